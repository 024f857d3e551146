package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

// ClientSession owns the anonymous identity of this client.
// The identity is generated on first use and persisted in the local store.
type ClientSession struct {
	store   contract.ILocalStore
	uuidGen contract.IUUIDGenerator
	logger  usecasecontract.IAppLogger

	mu       sync.Mutex
	clientID string
}

// NewClientSession creates a session over the given local store.
func NewClientSession(store contract.ILocalStore, uuidGen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *ClientSession {
	return &ClientSession{
		store:   store,
		uuidGen: uuidGen,
		logger:  logger,
	}
}

// ClientID returns the persisted client identity, creating one if none exists.
// An empty string means no identity could be established.
func (s *ClientSession) ClientID(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clientID != "" {
		return s.clientID
	}

	id, err := s.store.Get(ctx, clientIDKey)
	if err == nil && id != "" {
		s.clientID = id
		return id
	}
	if err != nil && !errors.Is(err, contract.ErrKeyNotFound) {
		s.logger.Warnf("failed to read client id: %v", err)
		return ""
	}

	id = s.uuidGen.NewUUID()
	if err := s.store.Set(ctx, clientIDKey, id); err != nil {
		s.logger.Warnf("failed to persist client id: %v", err)
		return ""
	}
	s.clientID = id
	return id
}
