package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

// sampleTopics is the catalogue offered by the topic picker.
var sampleTopics = []string{
	"Reading", "Drawing", "Photography", "Hiking",
	"Yoga", "Music", "Art", "Learning",
	"Business Development", "Generative AI", "Product Design",
	"Board Games", "Formula 1", "Traveling",
	"Cooking", "Self-Development", "Gaming",
	"Motorsport", "Healthy Lifestyle", "Politics",
	"Fashion", "Dance", "Psychology",
	"Film Photography", "Language Learning",
}

// SampleTopics returns a copy of the topic catalogue.
func SampleTopics() []string {
	topics := make([]string, len(sampleTopics))
	copy(topics, sampleTopics)
	return topics
}

// InterestUsecase persists the user's interest selection in the local store.
type InterestUsecase struct {
	store  contract.ILocalStore
	logger usecasecontract.IAppLogger
}

func NewInterestUsecase(store contract.ILocalStore, logger usecasecontract.IAppLogger) *InterestUsecase {
	return &InterestUsecase{store: store, logger: logger}
}

// SelectedInterests returns the stored selection. Missing or malformed state reads as empty.
func (u *InterestUsecase) SelectedInterests(ctx context.Context) entity.InterestSelection {
	raw, err := u.store.Get(ctx, selectedInterestsKey)
	if err != nil {
		if !errors.Is(err, contract.ErrKeyNotFound) {
			u.logger.Warnf("failed to read selected interests: %v", err)
		}
		return entity.InterestSelection{}
	}

	var topics []string
	if err := json.Unmarshal([]byte(raw), &topics); err != nil {
		u.logger.Errorf("error parsing stored interests: %v", err)
		return entity.InterestSelection{}
	}
	return normalizeInterests(topics)
}

// SaveInterests replaces the stored selection.
func (u *InterestUsecase) SaveInterests(ctx context.Context, topics []string) (entity.InterestSelection, error) {
	selection := normalizeInterests(topics)
	if selection.Empty() {
		return nil, ErrNoInterests
	}
	if len(selection) > entity.MaxInterests {
		return nil, fmt.Errorf("%w: %d selected, at most %d allowed", ErrTooManyInterests, len(selection), entity.MaxInterests)
	}
	if err := u.write(ctx, selection); err != nil {
		return nil, err
	}
	return selection, nil
}

// ToggleInterest adds topic when absent and there is room, or removes it when present.
func (u *InterestUsecase) ToggleInterest(ctx context.Context, topic string) (entity.InterestSelection, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return u.SelectedInterests(ctx), nil
	}

	current := u.SelectedInterests(ctx)
	var next entity.InterestSelection
	if current.Contains(topic) {
		for _, t := range current {
			if t != topic {
				next = append(next, t)
			}
		}
		if next.Empty() {
			return entity.InterestSelection{}, u.ClearInterests(ctx)
		}
	} else {
		if len(current) >= entity.MaxInterests {
			return current, ErrTooManyInterests
		}
		next = append(current, topic)
	}

	if err := u.write(ctx, next); err != nil {
		return current, err
	}
	return next, nil
}

// ClearInterests removes the stored selection.
func (u *InterestUsecase) ClearInterests(ctx context.Context) error {
	if err := u.store.Delete(ctx, selectedInterestsKey); err != nil {
		return fmt.Errorf("failed to clear interests: %w", err)
	}
	return nil
}

func (u *InterestUsecase) write(ctx context.Context, selection entity.InterestSelection) error {
	data, err := json.Marshal([]string(selection))
	if err != nil {
		return fmt.Errorf("failed to encode interests: %w", err)
	}
	if err := u.store.Set(ctx, selectedInterestsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save interests: %w", err)
	}
	return nil
}

// normalizeInterests trims topics and drops empty and duplicate entries, keeping order.
func normalizeInterests(topics []string) entity.InterestSelection {
	selection := make(entity.InterestSelection, 0, len(topics))
	for _, t := range topics {
		t = strings.TrimSpace(t)
		if t == "" || selection.Contains(t) {
			continue
		}
		selection = append(selection, t)
	}
	return selection
}
