package server

import (
	"github.com/shopspring/decimal"

	"github.com/KajamHamza/Blocks/internal/entities"
)

const maxLimit = 100
const defaultLimit = 20

// Error ...
type Error struct {
	Error string `json:"error"`
}

// Post ...
type Post struct {
	ID               string `json:"id"`
	AuthorAddress    string `json:"authorAddress"`
	Content          string `json:"content"`
	ImageURL         string `json:"imageUrl,omitempty"`
	CreatedAt        uint64 `json:"createdAt"`
	Likes            uint32 `json:"likes"`
	Comments         uint32 `json:"comments"`
	Reposts          uint32 `json:"reposts"`
	NetVotes         int64  `json:"netVotes"`
	UserCreditRating string `json:"userCreditRating"`
	Award            string `json:"award,omitempty"`
	Collection       string `json:"collection,omitempty"`
	KillZone         bool   `json:"killZone"`
}

// Profile ...
type Profile struct {
	ID               string      `json:"id"`
	Address          string      `json:"address"`
	Handle           string      `json:"handle"`
	Bio              string      `json:"bio,omitempty"`
	Avatar           string      `json:"avatar,omitempty"`
	SocialLinks      SocialLinks `json:"socialLinks"`
	UserCreditRating string      `json:"userCreditRating"`
	CreatedAt        uint64      `json:"createdAt"`
	UpdatedAt        uint64      `json:"updatedAt"`
}

// SocialLinks ...
type SocialLinks struct {
	Twitter string `json:"twitter,omitempty"`
	Github  string `json:"github,omitempty"`
	Website string `json:"website,omitempty"`
}

// CollectModule ...
type CollectModule struct {
	ID               string `json:"id"`
	PostID           string `json:"postId"`
	RecipientAddress string `json:"recipientAddress"`
	CollectPrice     string `json:"collectPrice"`
	TotalCollected   string `json:"totalCollected"`
	CollectorsCount  uint32 `json:"collectorsCount"`
}

// ListPostsResponse ...
type ListPostsResponse struct {
	Posts []Post `json:"posts"`
}

// ListBookmarksResponse ...
type ListBookmarksResponse struct {
	Bookmarks []Post `json:"bookmarks"`
}

// HandleAvailabilityResponse ...
type HandleAvailabilityResponse struct {
	Available bool `json:"available"`
}

// FlaggedPostsResponse ...
type FlaggedPostsResponse struct {
	Posts []string `json:"posts"`
}

// CreatePostRequest ...
type CreatePostRequest struct {
	Content       string `json:"content"`
	ImageURL      string `json:"imageUrl"`
	AuthorAddress string `json:"authorAddress"`
}

// InteractionRequest carries the acting user of a like/dislike/bookmark.
type InteractionRequest struct {
	UserAddress string `json:"userAddress"`
	Collection  string `json:"collection,omitempty"`
}

// TipRequest ...
type TipRequest struct {
	SenderAddress string          `json:"senderAddress"`
	Amount        decimal.Decimal `json:"amount"`
}

// CreateProfileRequest ...
type CreateProfileRequest struct {
	Address     string      `json:"address"`
	Handle      string      `json:"handle"`
	Bio         string      `json:"bio"`
	Avatar      string      `json:"avatar"`
	SocialLinks SocialLinks `json:"socialLinks"`
}

func toAPIPost(p *entities.Post) *Post {
	return &Post{
		ID:               p.ID,
		AuthorAddress:    p.AuthorAddress,
		Content:          p.Content,
		ImageURL:         p.ImageURL,
		CreatedAt:        uint64(p.CreatedAt.Unix()),
		Likes:            p.Likes,
		Comments:         p.Comments,
		Reposts:          p.Reposts,
		NetVotes:         p.NetVotes,
		UserCreditRating: formatRating(p.UserCreditRating),
		Award:            string(p.Award),
		Collection:       p.Collection,
		KillZone:         p.InKillZone(),
	}
}

func toAPIPosts(posts []*entities.Post) []Post {
	out := make([]Post, len(posts))
	for i, v := range posts {
		out[i] = *toAPIPost(v)
	}

	return out
}

func toAPIProfile(p *entities.Profile) *Profile {
	return &Profile{
		ID:      p.ID,
		Address: p.Address,
		Handle:  p.Handle,
		Bio:     p.Bio,
		Avatar:  p.Avatar,
		SocialLinks: SocialLinks{
			Twitter: p.SocialLinks.Twitter,
			Github:  p.SocialLinks.Github,
			Website: p.SocialLinks.Website,
		},
		UserCreditRating: formatRating(p.UserCreditRating),
		CreatedAt:        uint64(p.CreatedAt.Unix()),
		UpdatedAt:        uint64(p.UpdatedAt.Unix()),
	}
}

func toAPICollect(c *entities.CollectModule) *CollectModule {
	return &CollectModule{
		ID:               c.ID,
		PostID:           c.PostID,
		RecipientAddress: c.RecipientAddress,
		CollectPrice:     c.CollectPrice.String(),
		TotalCollected:   c.TotalCollected.String(),
		CollectorsCount:  c.CollectorsCount,
	}
}

func entitiesSocialLinks(l SocialLinks) entities.SocialLinks {
	return entities.SocialLinks{
		Twitter: l.Twitter,
		Github:  l.Github,
		Website: l.Website,
	}
}

func formatRating(r float64) string {
	return decimal.NewFromFloat(r).String()
}
