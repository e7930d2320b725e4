// Package orchestrator coordinates form submission, session lifecycle, and
// the per-description secondary generations. It owns the view state the
// presentation layer renders: current session, submitting flag, error slot.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/wassaf/wassaf-cli/internal/content"
	"github.com/wassaf/wassaf-cli/internal/gateway"
	"github.com/wassaf/wassaf-cli/internal/session"
	"github.com/wassaf/wassaf-cli/internal/state"
)

// ErrSubmitInFlight is returned when Submit is called while a primary
// generation is already running. The presentation layer disables the form,
// this guard is the internal backstop.
var ErrSubmitInFlight = errors.New("a generation is already in progress")

// ErrNoSession is returned by secondary operations when no session is in
// view or the description index is out of range.
var ErrNoSession = errors.New("no description in view")

// Orchestrator wires the gateway and the session store together and drives
// one operation state machine per (description index, content kind).
type Orchestrator struct {
	gw    *gateway.Gateway
	store *session.Store

	// artifacts caches secondary payloads for the lifetime of the current
	// view, keyed sessionID/descriptionIndex/kind. Flushed whenever the view
	// changes; artifacts are never persisted into the session.
	artifacts *gocache.Cache

	mu         sync.Mutex
	current    *session.Session
	submitting bool
	errMsg     string

	assets map[int]*state.Machine[content.MarketingAssets]
	faqs   map[int]*state.Machine[[]content.FAQItem]
	video  map[int]*state.Machine[content.VideoScript]
	audio  map[int]*state.Machine[content.AudioAd]
}

// New builds an orchestrator over the given gateway and store.
func New(gw *gateway.Gateway, store *session.Store) *Orchestrator {
	return &Orchestrator{
		gw:        gw,
		store:     store,
		artifacts: gocache.New(gocache.NoExpiration, 0),
		assets:    make(map[int]*state.Machine[content.MarketingAssets]),
		faqs:      make(map[int]*state.Machine[[]content.FAQItem]),
		video:     make(map[int]*state.Machine[content.VideoScript]),
		audio:     make(map[int]*state.Machine[content.AudioAd]),
	}
}

// userMessage collapses any gateway failure into the short, generic message
// shown for that operation. Causes are already logged by the gateway.
func userMessage(err error) string {
	var genErr *gateway.GenerationError
	if errors.As(err, &genErr) && genErr.Type == gateway.ErrTypeEmpty {
		return "The service returned no usable content. Please try again."
	}
	return "Content generation failed. Please try again."
}

// resetViewLocked discards every dependent machine and cached artifact.
// Callers hold the mutex.
func (o *Orchestrator) resetViewLocked() {
	for _, m := range o.assets {
		m.Reset()
	}
	for _, m := range o.faqs {
		m.Reset()
	}
	for _, m := range o.video {
		m.Reset()
	}
	for _, m := range o.audio {
		m.Reset()
	}
	o.artifacts.Flush()
}

// Submit validates the request, runs the primary generation, and on success
// creates a session and makes it the current view. The submitting flag
// always clears, success or failure.
func (o *Orchestrator) Submit(ctx context.Context, req content.GenerationRequest) error {
	o.mu.Lock()
	if o.submitting {
		o.mu.Unlock()
		return ErrSubmitInFlight
	}
	if err := req.Validate(); err != nil {
		o.errMsg = err.Error()
		o.mu.Unlock()
		return err
	}
	o.submitting = true
	o.errMsg = ""
	o.current = nil
	o.resetViewLocked()
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.submitting = false
		o.mu.Unlock()
	}()

	results, err := o.gw.GenerateContent(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("mode", string(req.Mode)).Msg("Primary generation failed")
		o.mu.Lock()
		o.errMsg = userMessage(err)
		o.mu.Unlock()
		return err
	}

	sess := o.store.Create(req, *results)

	o.mu.Lock()
	o.current = sess
	o.mu.Unlock()
	return nil
}

// --- View state ---

// Current returns the session in view, or nil.
func (o *Orchestrator) Current() *session.Session {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// HasResults reports whether a session with at least one description is in
// view.
func (o *Orchestrator) HasResults() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current != nil && len(o.current.Results.Descriptions) > 0
}

// Submitting reports whether a primary generation is in flight.
func (o *Orchestrator) Submitting() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.submitting
}

// Err returns the user-facing message of the last failed submit, or "".
func (o *Orchestrator) Err() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.errMsg
}

// Sessions lists the stored history, most-recent-first.
func (o *Orchestrator) Sessions() []session.Session {
	return o.store.List()
}

// LoadSession makes a stored session the current view, resetting every
// dependent machine.
func (o *Orchestrator) LoadSession(id string) error {
	sess, err := o.store.Load(id)
	if err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.current = sess
	o.errMsg = ""
	o.resetViewLocked()
	return nil
}

// DeleteSession removes a session from the store. If it was the current
// view, the view becomes empty.
func (o *Orchestrator) DeleteSession(id string) {
	o.store.Delete(id)
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.current != nil && o.current.ID == id {
		o.current = nil
		o.resetViewLocked()
	}
}

// ClearView drops the current session and error without touching the store.
func (o *Orchestrator) ClearView() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.current = nil
	o.errMsg = ""
	o.resetViewLocked()
}

// ClearHistory removes every stored session and empties the view.
func (o *Orchestrator) ClearHistory() {
	o.store.Clear()
	o.ClearView()
}

// --- Secondary generations ---

// describe returns the description at index i of the current session along
// with the context a secondary prompt needs.
func (o *Orchestrator) describe(i int) (desc, keywords string, lang content.OutputLanguage, sessionID string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.current == nil || i < 0 || i >= len(o.current.Results.Descriptions) {
		return "", "", "", "", ErrNoSession
	}
	return o.current.Results.Descriptions[i],
		o.current.FormData.Keywords,
		o.current.FormData.Language,
		o.current.ID,
		nil
}

func artifactKey(sessionID string, i int, kind content.Kind) string {
	return fmt.Sprintf("%s/%d/%s", sessionID, i, kind)
}

// machineFor returns the machine for index i in m, creating it on first use.
// Callers hold the mutex.
func machineFor[T any](m map[int]*state.Machine[T], i int) *state.Machine[T] {
	if mach, ok := m[i]; ok {
		return mach
	}
	mach := state.New[T]()
	m[i] = mach
	return mach
}

// runArtifact drives one (index, kind) machine: cached payloads are reused,
// fetch outcomes are recorded in the machine and the artifact cache, and
// failures collapse into the machine's error slot with a short message.
func runArtifact[T any](
	ctx context.Context,
	o *Orchestrator,
	machines map[int]*state.Machine[T],
	i int,
	kind content.Kind,
	generate func(ctx context.Context, desc, keywords string, lang content.OutputLanguage) (T, error),
) (T, error) {
	var zero T

	desc, keywords, lang, sessionID, err := o.describe(i)
	if err != nil {
		return zero, err
	}

	o.mu.Lock()
	mach := machineFor(machines, i)
	o.mu.Unlock()

	key := artifactKey(sessionID, i, kind)
	return mach.Trigger(ctx, func(ctx context.Context) (T, error) {
		if cached, ok := o.artifacts.Get(key); ok {
			if val, ok := cached.(T); ok {
				return val, nil
			}
		}
		val, err := generate(ctx, desc, keywords, lang)
		if err != nil {
			return zero, errors.New(userMessage(err))
		}
		o.artifacts.Set(key, val, gocache.NoExpiration)
		return val, nil
	})
}

// MarketingAssets generates (or returns the cached) marketing suite for
// description i of the current session.
func (o *Orchestrator) MarketingAssets(ctx context.Context, i int) (content.MarketingAssets, error) {
	return runArtifact(ctx, o, o.assets, i, content.KindMarketingAssets,
		func(ctx context.Context, desc, keywords string, lang content.OutputLanguage) (content.MarketingAssets, error) {
			assets, err := o.gw.MarketingAssets(ctx, desc, keywords, lang)
			if err != nil {
				return content.MarketingAssets{}, err
			}
			return *assets, nil
		})
}

// FAQs generates (or returns the cached) FAQ list for description i.
func (o *Orchestrator) FAQs(ctx context.Context, i int) ([]content.FAQItem, error) {
	return runArtifact(ctx, o, o.faqs, i, content.KindFAQs,
		func(ctx context.Context, desc, _ string, lang content.OutputLanguage) ([]content.FAQItem, error) {
			return o.gw.FAQs(ctx, desc, lang)
		})
}

// VideoScript generates (or returns the cached) video script for
// description i.
func (o *Orchestrator) VideoScript(ctx context.Context, i int) (content.VideoScript, error) {
	return runArtifact(ctx, o, o.video, i, content.KindVideoScript,
		func(ctx context.Context, desc, _ string, lang content.OutputLanguage) (content.VideoScript, error) {
			script, err := o.gw.VideoScript(ctx, desc, lang)
			if err != nil {
				return content.VideoScript{}, err
			}
			return *script, nil
		})
}

// AudioAd generates (or returns the cached) audio ad for description i.
func (o *Orchestrator) AudioAd(ctx context.Context, i int) (content.AudioAd, error) {
	return runArtifact(ctx, o, o.audio, i, content.KindAudioAd,
		func(ctx context.Context, desc, _ string, lang content.OutputLanguage) (content.AudioAd, error) {
			ad, err := o.gw.AudioAd(ctx, desc, lang)
			if err != nil {
				return content.AudioAd{}, err
			}
			return *ad, nil
		})
}

// ResetArtifacts returns the machines for description i to idle and drops
// their cached payloads, forcing the next trigger to regenerate.
func (o *Orchestrator) ResetArtifacts(i int) {
	o.mu.Lock()
	sessionID := ""
	if o.current != nil {
		sessionID = o.current.ID
	}
	if m, ok := o.assets[i]; ok {
		m.Reset()
	}
	if m, ok := o.faqs[i]; ok {
		m.Reset()
	}
	if m, ok := o.video[i]; ok {
		m.Reset()
	}
	if m, ok := o.audio[i]; ok {
		m.Reset()
	}
	o.mu.Unlock()

	if sessionID == "" {
		return
	}
	for _, kind := range content.SecondaryKinds() {
		o.artifacts.Delete(artifactKey(sessionID, i, kind))
	}
}

// GenerateAllArtifacts fans the four secondary generations for description i
// out concurrently. Machines already in flight are skipped; the first real
// failure is returned.
func (o *Orchestrator) GenerateAllArtifacts(ctx context.Context, i int) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, err := o.MarketingAssets(ctx, i)
		return ignoreInFlight(err)
	})
	g.Go(func() error {
		_, err := o.FAQs(ctx, i)
		return ignoreInFlight(err)
	})
	g.Go(func() error {
		_, err := o.VideoScript(ctx, i)
		return ignoreInFlight(err)
	})
	g.Go(func() error {
		_, err := o.AudioAd(ctx, i)
		return ignoreInFlight(err)
	})

	return g.Wait()
}

func ignoreInFlight(err error) error {
	if errors.Is(err, state.ErrInFlight) {
		return nil
	}
	return err
}
