package queries

import (
	"bytes"
	"context"

	"study-booking/internal/domain/setting"
	"study-booking/internal/pkg/errs"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type SettingReadStore interface {
	FindByKey(ctx context.Context, key setting.Key) (*SettingView, error)
	List(ctx context.Context) ([]*SettingView, error)
}

type SettingQueries interface {
	List(ctx context.Context) ([]*SettingView, error)
	Get(ctx context.Context, key string) (*SettingView, error)
	// ConsentHTML renders the consent text as an HTML fragment.
	ConsentHTML(ctx context.Context) (string, error)
}

type settingQueriesImpl struct {
	store    SettingReadStore
	markdown goldmark.Markdown
}

func NewSettingQueries(store SettingReadStore) SettingQueries {
	return &settingQueriesImpl{
		store: store,
		// consent text is written by the admin, so raw HTML is kept
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
				html.WithHardWraps(),
			),
		),
	}
}

func (q *settingQueriesImpl) List(ctx context.Context) ([]*SettingView, error) {
	return q.store.List(ctx)
}

func (q *settingQueriesImpl) Get(ctx context.Context, key string) (*SettingView, error) {
	k, err := setting.ParseKey(key)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSettingKey)
	}
	return q.store.FindByKey(ctx, k)
}

func (q *settingQueriesImpl) ConsentHTML(ctx context.Context) (string, error) {
	view, err := q.store.FindByKey(ctx, setting.KeyConsent)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := q.markdown.Convert([]byte(view.Value), &buf); err != nil {
		return "", errs.Wrap(err, "failed to render consent text")
	}
	return buf.String(), nil
}
