package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripinvoice/tripinvoice/internal/application"
	"github.com/tripinvoice/tripinvoice/internal/domain"
)

type countingViewport struct {
	compact bool
	calls   int
}

func (v *countingViewport) IsCompact() bool {
	v.calls++
	return v.compact
}

func TestNewSession_ProbesViewportOnce(t *testing.T) {
	vp := &countingViewport{compact: true}
	s := application.NewSession(domain.DefaultConfig(), application.SessionDeps{
		Clock: fixedClock{}, IDs: &seqIDs{}, Viewport: vp,
	}, application.SurfaceAuto)

	assert.Equal(t, application.SurfaceWizard, s.Kind())
	assert.Equal(t, "wizard", s.Surface().Name())

	s.Store().AddLineItem()
	_ = s.Document()
	assert.Equal(t, 1, vp.calls)
}

func TestNewSession_WideViewportGetsEditor(t *testing.T) {
	s := application.NewSession(domain.DefaultConfig(), application.SessionDeps{
		Clock: fixedClock{}, IDs: &seqIDs{}, Viewport: viewport(false),
	}, application.SurfaceAuto)
	assert.Equal(t, application.SurfaceEditor, s.Kind())
}

func TestNewSession_ExplicitKindSkipsProbe(t *testing.T) {
	vp := &countingViewport{compact: true}
	s := application.NewSession(domain.DefaultConfig(), application.SessionDeps{
		Clock: fixedClock{}, IDs: &seqIDs{}, Viewport: vp,
	}, application.SurfaceEditor)

	assert.Equal(t, "editor", s.Surface().Name())
	assert.Zero(t, vp.calls)
}

func TestSession_DocumentFollowsStore(t *testing.T) {
	s, _, _ := newSession(domain.DefaultConfig(), application.SurfaceEditor)
	s.Store().SetField(domain.FieldCustomerName, "Asha")
	assert.Equal(t, "Asha", s.Document().CustomerDetails[0].Value)
	assert.Equal(t, s.Document(), s.Editor().Document())
}
