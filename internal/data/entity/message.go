package entity

type Message struct {
	BaseSimple
	Name    string  `db:"name"`
	Email   string  `db:"email"`
	Subject *string `db:"subject"`
	Body    string  `db:"body"`
	IsRead  bool    `db:"is_read"`
}
