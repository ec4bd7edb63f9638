package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bwdtc/bridgewater-dems/internal/content"
	"github.com/bwdtc/bridgewater-dems/internal/model"
	"github.com/bwdtc/bridgewater-dems/internal/storage"
	storeMocks "github.com/bwdtc/bridgewater-dems/internal/storage/mocks"
)

func TestContentService_Site(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		setup     func(m *storeMocks.MockStore)
		want      func() model.SiteContent
		wantEvent string
	}{
		{
			name: "nothing stored returns defaults",
			setup: func(m *storeMocks.MockStore) {
				m.On("Get", mock.Anything, storage.KeySiteContent).Return(nil, storage.ErrNotFound)
			},
			want: content.DefaultSite,
		},
		{
			name: "partial override merged over defaults",
			setup: func(m *storeMocks.MockStore) {
				m.On("Get", mock.Anything, storage.KeySiteContent).
					Return([]byte(`{"home":{"title":"X"}}`), nil)
			},
			want: func() model.SiteContent {
				s := content.DefaultSite()
				s.Home.Title = "X"
				return s
			},
		},
		{
			name: "storage error falls back to defaults",
			setup: func(m *storeMocks.MockStore) {
				m.On("Get", mock.Anything, storage.KeySiteContent).Return(nil, errors.New("backend down"))
			},
			want:      content.DefaultSite,
			wantEvent: "content_read_failed",
		},
		{
			name: "unparsable stored value falls back to defaults",
			setup: func(m *storeMocks.MockStore) {
				m.On("Get", mock.Anything, storage.KeySiteContent).Return([]byte("{not json"), nil)
			},
			want:      content.DefaultSite,
			wantEvent: "content_parse_failed",
		},
		{
			name: "mistyped value keeps default and warns",
			setup: func(m *storeMocks.MockStore) {
				m.On("Get", mock.Anything, storage.KeySiteContent).
					Return([]byte(`{"home":{"title":42}}`), nil)
			},
			want:      content.DefaultSite,
			wantEvent: "content_merge_issue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(storeMocks.MockStore)
			tt.setup(m)
			log, logs := observedLogger(t)
			svc := NewContentService(m, content.DefaultDocument(), log)

			got := svc.Site(ctx)

			assert.Equal(t, tt.want(), got)
			if tt.wantEvent != "" {
				assert.Equal(t, 1, logs.FilterField(zap.String("event", tt.wantEvent)).Len())
			} else {
				assert.Zero(t, logs.Len())
			}
			m.AssertExpectations(t)
		})
	}
}

func TestContentService_WriteReadRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewContentService(storage.NewMemory(), content.DefaultDocument(), zap.NewNop())

	doc := content.DefaultSite()
	doc.Home.Title = "Welcome"
	doc.Header.Navigation = nil
	doc.Issues.Sections.Accomplishments.Items = []model.Accomplishment{}

	svc.SaveSite(ctx, doc)
	got := svc.Site(ctx)

	assert.Equal(t, "Welcome", got.Home.Title)
	// nil marshals to null, which keeps the default navigation.
	assert.Equal(t, content.DefaultSite().Header.Navigation, got.Header.Navigation)
	assert.NotNil(t, got.Issues.Sections.Accomplishments.Items)
	assert.Empty(t, got.Issues.Sections.Accomplishments.Items)
}

func TestContentService_SaveSwallowsErrors(t *testing.T) {
	ctx := context.Background()
	m := new(storeMocks.MockStore)
	m.On("Set", mock.Anything, storage.KeySiteContent, mock.Anything).Return(errors.New("quota exceeded"))
	m.On("Set", mock.Anything, storage.KeyDonationContent, mock.Anything).Return(errors.New("quota exceeded"))
	m.On("Delete", mock.Anything, storage.KeySiteContent).Return(errors.New("read only"))

	log, logs := observedLogger(t)
	svc := NewContentService(m, content.DefaultDocument(), log)

	assert.NotPanics(t, func() {
		svc.SaveSite(ctx, content.DefaultSite())
		svc.SaveDonation(ctx, content.DefaultDonation())
		svc.ResetSite(ctx)
	})
	assert.Equal(t, 2, logs.FilterField(zap.String("event", "content_write_failed")).Len())
	assert.Equal(t, 1, logs.FilterField(zap.String("event", "content_reset_failed")).Len())
	m.AssertExpectations(t)
}

func TestContentService_DonationIndependentOfSite(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, storage.KeySiteContent, []byte(`{"home":{"title":"Site"}}`)))
	require.NoError(t, store.Set(ctx, storage.KeyDonationContent, []byte(`{"donatePage":{"title":"Give"}}`)))

	svc := NewContentService(store, content.DefaultDocument(), zap.NewNop())
	doc := svc.Document(ctx)

	assert.Equal(t, "Site", doc.Home.Title)
	assert.Equal(t, "Give", doc.Donation.DonatePage.Title)
	assert.Equal(t, content.DefaultDonation().ThankYouPage, doc.Donation.ThankYouPage)

	svc.ResetDonation(ctx)
	assert.Equal(t, content.DefaultDonation(), svc.Donation(ctx))
	assert.Equal(t, "Site", svc.Site(ctx).Home.Title)
}

func TestContentService_Section(t *testing.T) {
	ctx := context.Background()
	svc := NewContentService(storage.NewMemory(), content.DefaultDocument(), zap.NewNop())

	for _, name := range model.Sections {
		got, ok := svc.Section(ctx, name)
		assert.True(t, ok, name)
		assert.NotNil(t, got, name)
	}

	vote, ok := svc.Section(ctx, "vote")
	require.True(t, ok)
	assert.Equal(t, content.DefaultSite().Vote, vote)

	_, ok = svc.Section(ctx, "nope")
	assert.False(t, ok)
}

func TestContentService_SaveSection(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	svc := NewContentService(store, content.DefaultDocument(), zap.NewNop())

	t.Run("site section", func(t *testing.T) {
		require.NoError(t, svc.SaveSection(ctx, "home", []byte(`{"title":"Hello"}`)))

		raw, err := store.Get(ctx, storage.KeySiteContent)
		require.NoError(t, err)
		var stored map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(raw, &stored))
		assert.Contains(t, stored, "footer", "whole document is written")

		got := svc.Site(ctx)
		assert.Equal(t, "Hello", got.Home.Title)
		assert.Equal(t, content.DefaultSite().Home.HeroSlider, got.Home.HeroSlider)
	})

	t.Run("donation section", func(t *testing.T) {
		require.NoError(t, svc.SaveSection(ctx, "donation", []byte(`{"thankYouPage":{"title":"Merci"}}`)))
		assert.Equal(t, "Merci", svc.Donation(ctx).ThankYouPage.Title)
	})

	t.Run("unknown section", func(t *testing.T) {
		assert.ErrorIs(t, svc.SaveSection(ctx, "blog", []byte(`{}`)), ErrUnknownSection)
	})

	t.Run("not an object", func(t *testing.T) {
		assert.ErrorIs(t, svc.SaveSection(ctx, "donation", []byte(`[1]`)), ErrInvalidContent)
	})

	t.Run("mistyped value rejected", func(t *testing.T) {
		err := svc.SaveSection(ctx, "home", []byte(`{"title":7}`))
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "home.title")
		assert.Equal(t, "Hello", svc.Site(ctx).Home.Title)
	})
}

func TestContentService_SaveDocumentReplacesArrays(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	svc := NewContentService(store, content.DefaultDocument(), zap.NewNop())

	defaults := content.DefaultSite().Header.Navigation
	require.Equal(t, "FACT CHECK", defaults[4].DisplayName)

	nav := append([]model.Link{}, defaults[:4]...)
	nav = append(nav, model.Link{Name: "News", Href: "/news"})
	body, err := json.Marshal(map[string]any{
		"header": map[string]any{"navigation": nav},
	})
	require.NoError(t, err)

	require.NoError(t, svc.SaveDocument(ctx, body))

	got := svc.Site(ctx)
	assert.Equal(t, nav, got.Header.Navigation)
	assert.Empty(t, got.Header.Navigation[4].DisplayName)
	assert.Equal(t, content.DefaultSite().Footer, got.Footer, "absent keys keep their values")

	t.Run("mistyped value leaves the document alone", func(t *testing.T) {
		err := svc.SaveDocument(ctx, []byte(`{"header":{"navigation":"home"}}`))
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, nav, svc.Site(ctx).Header.Navigation)
	})

	t.Run("not an object", func(t *testing.T) {
		assert.ErrorIs(t, svc.SaveDocument(ctx, []byte(`"x"`)), ErrInvalidContent)
	})
}

func TestContentService_SaveDonationDocumentReplacesArrays(t *testing.T) {
	ctx := context.Background()
	svc := NewContentService(storage.NewMemory(), content.DefaultDocument(), zap.NewNop())

	require.Len(t, content.DefaultDonation().ThankYouPage.NextSteps, 4)
	require.NoError(t, svc.SaveDonationDocument(ctx, []byte(`{"thankYouPage":{"nextSteps":["Watch your inbox"]}}`)))

	got := svc.Donation(ctx)
	assert.Equal(t, []string{"Watch your inbox"}, got.ThankYouPage.NextSteps)
	assert.Equal(t, content.DefaultDonation().ThankYouPage.Title, got.ThankYouPage.Title)
	assert.Equal(t, content.DefaultSite(), svc.Site(ctx), "site document untouched")
}
