// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/KajamHamza/Blocks/internal/entities"
	"github.com/KajamHamza/Blocks/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx in tx")

const uniqueViolation = "23505"

type pg struct {
	ext sqlx.ExtContext
}

type postDTO struct {
	ID               string    `db:"id"`
	AuthorAddress    string    `db:"author_address"`
	Content          string    `db:"content"`
	ImageURL         string    `db:"image_url"`
	CreatedAt        time.Time `db:"created_at"`
	Likes            uint32    `db:"likes"`
	Comments         uint32    `db:"comments"`
	Reposts          uint32    `db:"reposts"`
	NetVotes         int64     `db:"net_votes"`
	UserCreditRating float64   `db:"user_credit_rating"`
	Award            string    `db:"award"`
}

type profileDTO struct {
	ID               string    `db:"id"`
	Address          string    `db:"address"`
	Handle           string    `db:"handle"`
	Bio              string    `db:"bio"`
	Avatar           string    `db:"avatar"`
	Twitter          string    `db:"twitter"`
	Github           string    `db:"github"`
	Website          string    `db:"website"`
	UserCreditRating float64   `db:"user_credit_rating"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type bookmarkDTO struct {
	Owner      string `db:"owner"`
	Collection string `db:"collection"`
	postDTO
}

type collectDTO struct {
	ID               string          `db:"id"`
	PostID           string          `db:"post_id"`
	RecipientAddress string          `db:"recipient_address"`
	CollectPrice     decimal.Decimal `db:"collect_price"`
	TotalCollected   decimal.Decimal `db:"total_collected"`
	CollectorsCount  uint32          `db:"collectors_count"`
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) CreatePost(ctx context.Context, p *entities.Post) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO post(id, author_address, content, image_url, created_at, likes, comments, reposts, net_votes, user_credit_rating, award)
			VALUES(:id, :author_address, :content, :image_url, :created_at, :likes, :comments, :reposts, :net_votes, :user_credit_rating, :award)
		`, toPostDTO(p),
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == uniqueViolation {
			return storage.ErrConflict
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	query := `
			SELECT id, author_address, content, image_url, created_at, likes, comments, reposts, net_votes, user_credit_rating, award
			FROM post
			WHERE id = $1
		`

	// lock the row when reading within a tx so read-modify-write cycles
	// do not lose updates
	if _, ok := s.ext.(*sqlx.Tx); ok {
		query += ` FOR UPDATE`
	}

	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toPost(&p), nil
}

func (s pg) UpdatePost(ctx context.Context, p *entities.Post) error {
	res, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			UPDATE post SET
				likes=:likes, comments=:comments, reposts=:reposts, net_votes=:net_votes, award=:award
			WHERE id=:id
		`, toPostDTO(p),
	)

	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// ListPosts returns posts in storage order unless an order is requested.
func (s pg) ListPosts(ctx context.Context, params *storage.ListPostsParams) ([]*entities.Post, error) {
	query := `
			SELECT id, author_address, content, image_url, created_at, likes, comments, reposts, net_votes, user_credit_rating, award
			FROM post
		`

	var args []interface{}

	if params.Author != nil {
		query += ` WHERE author_address = $1`
		args = append(args, *params.Author)
	}

	switch params.OrderBy {
	case storage.AscendingOrder:
		query += ` ORDER BY created_at ASC`
	case storage.DescendingOrder:
		query += ` ORDER BY created_at DESC`
	}

	if params.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, params.Limit)
	}

	var out []*postDTO

	if err := sqlx.SelectContext(ctx, s.ext, &out, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	posts := make([]*entities.Post, len(out))
	for i, v := range out {
		posts[i] = toPost(v)
	}

	return posts, nil
}

func (s pg) CreateProfile(ctx context.Context, p *entities.Profile) error {
	profile := profileDTO{
		ID:               p.ID,
		Address:          p.Address,
		Handle:           p.Handle,
		Bio:              p.Bio,
		Avatar:           p.Avatar,
		Twitter:          p.SocialLinks.Twitter,
		Github:           p.SocialLinks.Github,
		Website:          p.SocialLinks.Website,
		UserCreditRating: p.UserCreditRating,
		CreatedAt:        p.CreatedAt.UTC(),
		UpdatedAt:        p.UpdatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO profile(id, address, handle, bio, avatar, twitter, github, website, user_credit_rating, created_at, updated_at)
			VALUES(:id, :address, :handle, :bio, :avatar, :twitter, :github, :website, :user_credit_rating, :created_at, :updated_at)
			ON CONFLICT(address) DO UPDATE SET
			handle=excluded.handle, bio=excluded.bio, avatar=excluded.avatar, twitter=excluded.twitter,
			github=excluded.github, website=excluded.website, updated_at=excluded.updated_at
		`, profile,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == uniqueViolation {
			return storage.ErrConflict
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetProfileByAddress(ctx context.Context, address string) (*entities.Profile, error) {
	return s.getProfile(ctx, `address = $1`, address)
}

func (s pg) GetProfileByHandle(ctx context.Context, handle string) (*entities.Profile, error) {
	return s.getProfile(ctx, `LOWER(handle) = LOWER($1)`, handle)
}

func (s pg) getProfile(ctx context.Context, cond string, arg interface{}) (*entities.Profile, error) {
	var p profileDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, fmt.Sprintf(`
			SELECT id, address, handle, bio, avatar, twitter, github, website, user_credit_rating, created_at, updated_at
			FROM profile
			WHERE %s
		`, cond), arg,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Profile{
		ID:      p.ID,
		Address: p.Address,
		Handle:  p.Handle,
		Bio:     p.Bio,
		Avatar:  p.Avatar,
		SocialLinks: entities.SocialLinks{
			Twitter: p.Twitter,
			Github:  p.Github,
			Website: p.Website,
		},
		UserCreditRating: p.UserCreditRating,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}, nil
}

func (s pg) AddBookmark(ctx context.Context, owner string, p *entities.Post) error {
	b := bookmarkDTO{
		Owner:      owner,
		Collection: p.Collection,
		postDTO:    *toPostDTO(p),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO bookmark(owner, collection, post_id, author_address, content, image_url, created_at, likes, comments, reposts, net_votes, user_credit_rating, award)
			VALUES(:owner, :collection, :id, :author_address, :content, :image_url, :created_at, :likes, :comments, :reposts, :net_votes, :user_credit_rating, :award)
			ON CONFLICT(owner, collection, post_id) DO NOTHING
		`, b,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListBookmarks(ctx context.Context, owner, collection string) ([]*entities.Post, error) {
	query := `
			SELECT owner, collection, post_id AS id, author_address, content, image_url, created_at, likes, comments, reposts, net_votes, user_credit_rating, award
			FROM bookmark
			WHERE owner = $1
		`
	args := []interface{}{owner}

	if collection != "" {
		query += ` AND collection = $2`
		args = append(args, collection)
	}

	var out []*bookmarkDTO

	if err := sqlx.SelectContext(ctx, s.ext, &out, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	posts := make([]*entities.Post, len(out))
	for i, v := range out {
		p := toPost(&v.postDTO)
		p.Collection = v.Collection
		posts[i] = p
	}

	return posts, nil
}

func (s pg) GetCollect(ctx context.Context, postID string) (*entities.CollectModule, error) {
	query := `
			SELECT id, post_id, recipient_address, collect_price, total_collected, collectors_count
			FROM collect_module
			WHERE post_id = $1
		`

	if _, ok := s.ext.(*sqlx.Tx); ok {
		query += ` FOR UPDATE`
	}

	var c collectDTO

	if err := sqlx.GetContext(ctx, s.ext, &c, query, postID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.CollectModule{
		ID:               c.ID,
		PostID:           c.PostID,
		RecipientAddress: c.RecipientAddress,
		CollectPrice:     c.CollectPrice,
		TotalCollected:   c.TotalCollected,
		CollectorsCount:  c.CollectorsCount,
	}, nil
}

func (s pg) SaveCollect(ctx context.Context, c *entities.CollectModule) error {
	dto := collectDTO{
		ID:               c.ID,
		PostID:           c.PostID,
		RecipientAddress: c.RecipientAddress,
		CollectPrice:     c.CollectPrice,
		TotalCollected:   c.TotalCollected,
		CollectorsCount:  c.CollectorsCount,
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO collect_module(id, post_id, recipient_address, collect_price, total_collected, collectors_count)
			VALUES(:id, :post_id, :recipient_address, :collect_price, :total_collected, :collectors_count)
			ON CONFLICT(post_id) DO UPDATE SET
			total_collected=excluded.total_collected, collectors_count=excluded.collectors_count
		`, dto,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func toPostDTO(p *entities.Post) *postDTO {
	return &postDTO{
		ID:               p.ID,
		AuthorAddress:    p.AuthorAddress,
		Content:          p.Content,
		ImageURL:         p.ImageURL,
		CreatedAt:        p.CreatedAt.UTC(),
		Likes:            p.Likes,
		Comments:         p.Comments,
		Reposts:          p.Reposts,
		NetVotes:         p.NetVotes,
		UserCreditRating: p.UserCreditRating,
		Award:            string(p.Award),
	}
}

func toPost(p *postDTO) *entities.Post {
	return &entities.Post{
		ID:               p.ID,
		AuthorAddress:    p.AuthorAddress,
		Content:          p.Content,
		ImageURL:         p.ImageURL,
		CreatedAt:        p.CreatedAt,
		Likes:            p.Likes,
		Comments:         p.Comments,
		Reposts:          p.Reposts,
		NetVotes:         p.NetVotes,
		UserCreditRating: p.UserCreditRating,
		Award:            entities.Award(p.Award),
	}
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}
