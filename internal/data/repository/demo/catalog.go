package demo

import (
	"context"
	"fmt"
	"sort"

	"coffee-house/internal/data/entity"

	"github.com/google/uuid"
)

func errNotFound(what string) error {
	return fmt.Errorf("%s not found", what)
}

type menuCategoryRepo struct {
	s *store
}

func (r *menuCategoryRepo) Create(ctx context.Context, category *entity.MenuCategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.menuCategories[category.ID] = *category
	return nil
}

func (r *menuCategoryRepo) FindAll(ctx context.Context) ([]*entity.MenuCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var categories []*entity.MenuCategory
	for _, category := range r.s.menuCategories {
		c := category
		categories = append(categories, &c)
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].DisplayOrder != categories[j].DisplayOrder {
			return categories[i].DisplayOrder < categories[j].DisplayOrder
		}
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

type menuItemRepo struct {
	s *store
}

func (r *menuItemRepo) Create(ctx context.Context, item *entity.MenuItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.menuItems[item.ID] = *item
	return nil
}

func (r *menuItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	item, ok := r.s.menuItems[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *menuItemRepo) FindAll(ctx context.Context) ([]*entity.MenuItem, error) {
	return r.list(false)
}

func (r *menuItemRepo) FindAvailable(ctx context.Context) ([]*entity.MenuItem, error) {
	return r.list(true)
}

func (r *menuItemRepo) list(availableOnly bool) ([]*entity.MenuItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var items []*entity.MenuItem
	for _, item := range r.s.menuItems {
		if availableOnly && !item.IsAvailable {
			continue
		}
		i := item
		items = append(items, &i)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *menuItemRepo) Update(ctx context.Context, item *entity.MenuItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.menuItems[item.ID]; !ok {
		return errNotFound("menu item")
	}
	r.s.menuItems[item.ID] = *item
	return nil
}

func (r *menuItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.menuItems[id]; !ok {
		return errNotFound("menu item")
	}
	delete(r.s.menuItems, id)
	return nil
}

func (r *menuItemRepo) BulkSetAvailability(ctx context.Context, ids []uuid.UUID, available bool) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var updated int64
	for _, id := range ids {
		item, ok := r.s.menuItems[id]
		if !ok {
			continue
		}
		item.IsAvailable = available
		item.UpdatedAt = now()
		r.s.menuItems[id] = item
		updated++
	}
	return updated, nil
}

type blogCategoryRepo struct {
	s *store
}

func (r *blogCategoryRepo) Create(ctx context.Context, category *entity.BlogCategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.blogCats[category.ID] = *category
	return nil
}

func (r *blogCategoryRepo) FindAll(ctx context.Context) ([]*entity.BlogCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var categories []*entity.BlogCategory
	for _, category := range r.s.blogCats {
		c := category
		categories = append(categories, &c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

type blogPostRepo struct {
	s *store
}

func (r *blogPostRepo) Create(ctx context.Context, post *entity.BlogPost) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.blogPosts[post.ID] = *post
	return nil
}

func (r *blogPostRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	post, ok := r.s.blogPosts[id]
	if !ok {
		return nil, nil
	}
	return &post, nil
}

func (r *blogPostRepo) FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, post := range r.s.blogPosts {
		if post.Slug == slug {
			p := post
			return &p, nil
		}
	}
	return nil, nil
}

func (r *blogPostRepo) FindAll(ctx context.Context) ([]*entity.BlogPost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var posts []*entity.BlogPost
	for _, post := range r.s.blogPosts {
		p := post
		posts = append(posts, &p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (r *blogPostRepo) FindPublished(ctx context.Context, limit int) ([]*entity.BlogPost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var posts []*entity.BlogPost
	for _, post := range r.s.blogPosts {
		if !post.IsPublished {
			continue
		}
		p := post
		posts = append(posts, &p)
	}
	sort.Slice(posts, func(i, j int) bool {
		pi, pj := posts[i].PublishedAt, posts[j].PublishedAt
		if pi == nil || pj == nil {
			return pj == nil
		}
		return pi.After(*pj)
	})
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (r *blogPostRepo) Update(ctx context.Context, post *entity.BlogPost) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.blogPosts[post.ID]; !ok {
		return errNotFound("blog post")
	}
	r.s.blogPosts[post.ID] = *post
	return nil
}

func (r *blogPostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.blogPosts[id]; !ok {
		return errNotFound("blog post")
	}
	delete(r.s.blogPosts, id)
	return nil
}

type messageRepo struct {
	s *store
}

func (r *messageRepo) Create(ctx context.Context, message *entity.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.messages[message.ID] = *message
	return nil
}

func (r *messageRepo) FindAll(ctx context.Context) ([]*entity.Message, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var messages []*entity.Message
	for _, message := range r.s.messages {
		m := message
		messages = append(messages, &m)
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].CreatedAt.After(messages[j].CreatedAt) })
	return messages, nil
}

func (r *messageRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	message, ok := r.s.messages[id]
	if !ok {
		return errNotFound("message")
	}
	message.IsRead = true
	r.s.messages[id] = message
	return nil
}

func (r *messageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.messages[id]; !ok {
		return errNotFound("message")
	}
	delete(r.s.messages, id)
	return nil
}

func (r *messageRepo) CountUnread(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var count int64
	for _, message := range r.s.messages {
		if !message.IsRead {
			count++
		}
	}
	return count, nil
}
