package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

// DefaultPollInterval is how often the feed is re-fetched.
const DefaultPollInterval = 30 * time.Second

type interestSource interface {
	SelectedInterests(ctx context.Context) entity.InterestSelection
}

// FeedPoller keeps a snapshot of the full post collection, replaced wholesale on
// every fetch, and the interest-filtered view derived from it.
type FeedPoller struct {
	source    contract.IFeedSource
	interests interestSource
	logger    usecasecontract.IAppLogger
	interval  time.Duration

	mu       sync.Mutex
	cron     *cron.Cron
	all      []entity.Post
	visible  []entity.Post
	onUpdate func([]entity.Post)
}

func NewFeedPoller(source contract.IFeedSource, interests interestSource, logger usecasecontract.IAppLogger, interval time.Duration) *FeedPoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &FeedPoller{
		source:    source,
		interests: interests,
		logger:    logger,
		interval:  interval,
	}
}

// OnUpdate registers the callback receiving every recomputed view.
func (p *FeedPoller) OnUpdate(fn func(posts []entity.Post)) {
	p.mu.Lock()
	p.onUpdate = fn
	p.mu.Unlock()
}

// Start fetches once and then keeps polling until Stop is called.
func (p *FeedPoller) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.cron != nil {
		p.mu.Unlock()
		return nil
	}
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", p.interval), func() {
		if err := p.Refresh(ctx); err != nil {
			p.logger.Errorf("feed poll failed: %v", err)
		}
	}); err != nil {
		p.mu.Unlock()
		return fmt.Errorf("schedule feed poll: %w", err)
	}
	p.cron = c
	p.mu.Unlock()

	if err := p.Refresh(ctx); err != nil {
		p.logger.Errorf("initial feed fetch failed: %v", err)
	}
	c.Start()
	return nil
}

// Stop tears the schedule down and waits for a running fetch to finish.
func (p *FeedPoller) Stop() {
	p.mu.Lock()
	c := p.cron
	p.cron = nil
	p.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
}

// Refresh fetches the post collection and recomputes the view.
// On failure the previous snapshot is kept.
func (p *FeedPoller) Refresh(ctx context.Context) error {
	posts, err := p.source.FetchPosts(ctx)
	if err != nil {
		return fmt.Errorf("fetch posts: %w", err)
	}

	p.mu.Lock()
	p.all = posts
	p.mu.Unlock()

	p.Refilter(ctx)
	return nil
}

// Refilter recomputes the view from the current snapshot and interest selection.
func (p *FeedPoller) Refilter(ctx context.Context) []entity.Post {
	selection := p.interests.SelectedInterests(ctx)

	p.mu.Lock()
	p.visible = FilterPostsByInterests(p.all, selection)
	view := p.visible
	notify := p.onUpdate
	p.mu.Unlock()

	if notify != nil {
		notify(view)
	}
	return view
}

// Posts returns the current view.
func (p *FeedPoller) Posts() []entity.Post {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}
