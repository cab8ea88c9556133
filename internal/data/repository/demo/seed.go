package demo

import (
	"context"
	"time"

	"coffee-house/internal/data/entity"
	"coffee-house/internal/data/repository"
	"coffee-house/pkg/utils"

	"github.com/google/uuid"
)

// seed loads the fixture dataset the storefront shows when no backend is
// configured: a small menu, a couple of events and posts, and an admin
// account (admin@coffeehouse.local / changeme).
func seed(repo *repository.Repository) {
	ctx := context.Background()
	created := now()

	hash, _ := utils.HashPassword("changeme")
	repo.User.Create(ctx, &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: created, UpdatedAt: created},
		Username:     "admin",
		Email:        "admin@coffeehouse.local",
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		IsActive:     true,
	})

	coffee := &entity.MenuCategory{
		BaseSimple:   entity.BaseSimple{ID: uuid.New(), CreatedAt: created},
		Name:         "Coffee",
		DisplayOrder: 0,
	}
	pastries := &entity.MenuCategory{
		BaseSimple:   entity.BaseSimple{ID: uuid.New(), CreatedAt: created},
		Name:         "Pastries",
		DisplayOrder: 1,
	}
	repo.MenuCategory.Create(ctx, coffee)
	repo.MenuCategory.Create(ctx, pastries)

	menuItems := []*entity.MenuItem{
		{
			Base:        entity.Base{ID: uuid.New(), CreatedAt: created, UpdatedAt: created},
			CategoryID:  &coffee.ID,
			Name:        "Flat White",
			Description: strPtr("Double shot with velvety steamed milk"),
			Price:       3.40,
			IsAvailable: true,
		},
		{
			Base:        entity.Base{ID: uuid.New(), CreatedAt: created, UpdatedAt: created},
			CategoryID:  &coffee.ID,
			Name:        "Batch Brew",
			Description: strPtr("Rotating single origin filter"),
			Price:       2.80,
			IsAvailable: true,
		},
		{
			Base:        entity.Base{ID: uuid.New(), CreatedAt: created, UpdatedAt: created},
			CategoryID:  &pastries.ID,
			Name:        "Almond Croissant",
			Description: strPtr("Baked every morning"),
			Price:       3.20,
			IsAvailable: true,
		},
	}
	for _, item := range menuItems {
		repo.MenuItem.Create(ctx, item)
	}

	workshops := &entity.EventCategory{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: created},
		Name:       "Workshops",
	}
	repo.EventCategory.Create(ctx, workshops)

	repo.Event.Create(ctx, &entity.Event{
		Base:             entity.Base{ID: uuid.New(), CreatedAt: created, UpdatedAt: created},
		CategoryID:       &workshops.ID,
		Title:            "Latte Art Evening",
		Description:      strPtr("Hands-on session with our head barista"),
		EventDate:        created.Add(14 * 24 * time.Hour),
		TicketPrice:      15.00,
		MaxAttendees:     12,
		CurrentAttendees: 0,
		IsPublished:      true,
	})
	repo.Event.Create(ctx, &entity.Event{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: created, UpdatedAt: created},
		CategoryID:   &workshops.ID,
		Title:        "Cupping Session",
		Description:  strPtr("Taste the new season's arrivals"),
		EventDate:    created.Add(21 * 24 * time.Hour),
		TicketPrice:  8.00,
		MaxAttendees: 10,
		IsPublished:  true,
	})

	news := &entity.BlogCategory{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: created},
		Name:       "News",
	}
	repo.BlogCategory.Create(ctx, news)

	published := created.Add(-48 * time.Hour)
	repo.BlogPost.Create(ctx, &entity.BlogPost{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: published, UpdatedAt: published},
		CategoryID:  &news.ID,
		Title:       "New Season, New Beans",
		Slug:        "new-season-new-beans",
		Excerpt:     strPtr("Our spring line-up has landed"),
		Content:     "We have three new origins on the shelf this month...",
		IsPublished: true,
		PublishedAt: &published,
	})
}
