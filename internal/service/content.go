package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/bwdtc/bridgewater-dems/internal/merge"
	"github.com/bwdtc/bridgewater-dems/internal/metrics"
	"github.com/bwdtc/bridgewater-dems/internal/model"
	"github.com/bwdtc/bridgewater-dems/internal/storage"
)

// Read sources reported on the content_reads_total metric.
const (
	sourceStored   = "stored"
	sourceDefault  = "default"
	sourceFallback = "fallback"
)

// ContentService reads and writes the site content and donation documents.
// Reads never fail: anything wrong with the stored copy degrades to defaults.
// Writes are best effort and failures are only logged.
type ContentService interface {
	Site(ctx context.Context) model.SiteContent
	SaveSite(ctx context.Context, doc model.SiteContent)
	ResetSite(ctx context.Context)

	Donation(ctx context.Context) model.DonationContent
	SaveDonation(ctx context.Context, doc model.DonationContent)
	ResetDonation(ctx context.Context)

	// Document is every site section plus the donation document.
	Document(ctx context.Context) model.ContentDocument
	// Section returns one section of Document by name.
	Section(ctx context.Context, name string) (any, bool)
	// SaveDocument and SaveDonationDocument overlay a raw JSON body onto the
	// current document and save the result. Arrays in raw replace the stored
	// arrays whole; a value that does not fit the schema is a *model.ValidationError.
	SaveDocument(ctx context.Context, raw []byte) error
	SaveDonationDocument(ctx context.Context, raw []byte) error
	// SaveSection overlays raw onto one section of the current document and
	// saves the whole document it belongs to.
	SaveSection(ctx context.Context, name string, raw []byte) error
}

type contentService struct {
	store    storage.Store
	defaults model.ContentDocument
	log      *zap.Logger
}

// NewContentService constructs a ContentService over store.
func NewContentService(store storage.Store, defaults model.ContentDocument, log *zap.Logger) ContentService {
	return &contentService{
		store:    store,
		defaults: defaults,
		log:      orGlobal(log).With(zap.String("component", "content")),
	}
}

func (s *contentService) Site(ctx context.Context) model.SiteContent {
	return readDocument(ctx, s.store, s.log, storage.KeySiteContent, "site", s.defaults.SiteContent)
}

func (s *contentService) SaveSite(ctx context.Context, doc model.SiteContent) {
	writeDocument(ctx, s.store, s.log, storage.KeySiteContent, "site", doc)
}

func (s *contentService) ResetSite(ctx context.Context) {
	resetDocument(ctx, s.store, s.log, storage.KeySiteContent, "site")
}

func (s *contentService) Donation(ctx context.Context) model.DonationContent {
	return readDocument(ctx, s.store, s.log, storage.KeyDonationContent, "donation", s.defaults.Donation)
}

func (s *contentService) SaveDonation(ctx context.Context, doc model.DonationContent) {
	writeDocument(ctx, s.store, s.log, storage.KeyDonationContent, "donation", doc)
}

func (s *contentService) ResetDonation(ctx context.Context) {
	resetDocument(ctx, s.store, s.log, storage.KeyDonationContent, "donation")
}

func (s *contentService) Document(ctx context.Context) model.ContentDocument {
	return model.ContentDocument{
		SiteContent: s.Site(ctx),
		Donation:    s.Donation(ctx),
	}
}

func (s *contentService) Section(ctx context.Context, name string) (any, bool) {
	if !slices.Contains(model.Sections, name) {
		return nil, false
	}
	if name == "donation" {
		return s.Donation(ctx), true
	}
	return model.ContentDocument{SiteContent: s.Site(ctx)}.Section(name)
}

func (s *contentService) SaveDocument(ctx context.Context, raw []byte) error {
	doc, err := overlayStrict(s.Site(ctx), raw)
	if err != nil {
		return err
	}
	s.SaveSite(ctx, doc)
	return nil
}

func (s *contentService) SaveDonationDocument(ctx context.Context, raw []byte) error {
	doc, err := overlayStrict(s.Donation(ctx), raw)
	if err != nil {
		return err
	}
	s.SaveDonation(ctx, doc)
	return nil
}

func (s *contentService) SaveSection(ctx context.Context, name string, raw []byte) error {
	if !slices.Contains(model.Sections, name) {
		return fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
	if name == "donation" {
		return s.SaveDonationDocument(ctx, raw)
	}

	wrapped, err := json.Marshal(map[string]json.RawMessage{name: raw})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	return s.SaveDocument(ctx, wrapped)
}

// overlayStrict is the admin write path: unlike reads, a value that does not
// fit the schema is rejected instead of silently dropped.
func overlayStrict[T any](current T, raw []byte) (T, error) {
	merged, issues, err := merge.Overlay(current, raw)
	if err != nil {
		return current, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	if len(issues) > 0 {
		verr := &model.ValidationError{}
		for _, is := range issues {
			verr.Add(is.Path, is.Err.Error())
		}
		return current, verr
	}
	return merged, nil
}

func readDocument[T any](ctx context.Context, store storage.Store, log *zap.Logger, key, document string, defaults T) T {
	ctx, span := tracer.Start(ctx, "content.read")
	defer span.End()
	span.SetAttributes(attribute.String("content.key", key))

	source := sourceStored
	defer func() {
		span.SetAttributes(attribute.String("content.source", source))
		metrics.ContentReads.WithLabelValues(document, source).Inc()
	}()

	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			source = sourceDefault
		} else {
			source = sourceFallback
			log.Error("content read failed, using defaults", zap.String("event", "content_read_failed"), zap.String("key", key), zap.Error(err))
		}
		out, _, _ := merge.Overlay(defaults, nil)
		return out
	}

	out, issues, err := merge.Overlay(defaults, raw)
	if err != nil {
		source = sourceFallback
		log.Error("stored content is not a JSON object, using defaults", zap.String("event", "content_parse_failed"), zap.String("key", key), zap.Error(err))
		return out
	}
	for _, is := range issues {
		log.Warn("stored content value ignored", zap.String("event", "content_merge_issue"), zap.String("key", key), zap.String("path", is.Path), zap.Error(is.Err))
	}
	return out
}

func writeDocument[T any](ctx context.Context, store storage.Store, log *zap.Logger, key, document string, doc T) {
	ctx, span := tracer.Start(ctx, "content.write")
	defer span.End()

	raw, err := json.Marshal(doc)
	if err == nil {
		err = store.Set(ctx, key, raw)
	}
	if err != nil {
		metrics.ContentWriteFailures.WithLabelValues(document).Inc()
		span.RecordError(err)
		log.Error("content write failed", zap.String("event", "content_write_failed"), zap.String("key", key), zap.Error(err))
		return
	}
	log.Info("content saved", zap.String("event", "content_saved"), zap.String("key", key), zap.Int("bytes", len(raw)))
}

func resetDocument(ctx context.Context, store storage.Store, log *zap.Logger, key, document string) {
	if err := store.Delete(ctx, key); err != nil {
		metrics.ContentWriteFailures.WithLabelValues(document).Inc()
		log.Error("content reset failed", zap.String("event", "content_reset_failed"), zap.String("key", key), zap.Error(err))
		return
	}
	log.Info("content reset to defaults", zap.String("event", "content_reset"), zap.String("key", key))
}
