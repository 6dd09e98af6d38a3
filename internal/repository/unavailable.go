package repository

import (
	"context"
	"time"

	"jokepatra/internal/models"
)

// Unavailable returns a Repository whose every call fails with err. It stands
// in when the database could not be configured so routes answer with the
// diagnostic instead of the process exiting.
func Unavailable(err error) *Repository {
	u := unavailable{err: err}
	return &Repository{
		User:          u,
		Article:       u,
		PublicArticle: u,
		Tables:        u,
	}
}

type unavailable struct {
	err error
}

func (u unavailable) GetUserByEmail(context.Context, string) (*models.User, error) {
	return nil, u.err
}

func (u unavailable) UpsertUser(context.Context, *models.User) error {
	return u.err
}

func (u unavailable) Create(context.Context, *models.Article) error {
	return u.err
}

func (u unavailable) List(context.Context, int, int) ([]models.Article, int, error) {
	return nil, 0, u.err
}

func (u unavailable) Update(context.Context, *models.Article) (*models.Article, *string, error) {
	return nil, nil, u.err
}

func (u unavailable) SetPublishedAt(context.Context, string, *time.Time) (*models.Article, error) {
	return nil, u.err
}

func (u unavailable) Delete(context.Context, string) error {
	return u.err
}

func (u unavailable) ListPublished(context.Context, int, int) ([]models.Article, int, error) {
	return nil, 0, u.err
}

func (u unavailable) GetPublishedBySlug(context.Context, string) (*models.Article, error) {
	return nil, u.err
}

func (u unavailable) CountTablesDB(context.Context) (int, error) {
	return 0, u.err
}
