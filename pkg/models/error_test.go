package models

import (
	"context"
	"net/http"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

func TestKindError(t *testing.T) {
	g := NewWithT(t)
	err := errors.New("test error")

	got := NewKindError(SessionInvalidated, err)

	g.Expect(got.Kind()).To(Equal(SessionInvalidated))
	g.Expect(got.Code()).To(Equal(http.StatusGone))
	g.Expect(got.Error()).To(Equal("test error"))
	g.Expect(got.Unwrap()).To(BeIdenticalTo(err))
}

func TestKindError_Is(t *testing.T) {
	g := NewWithT(t)

	err := errors.Wrap(NewDestinationDeniedError(errors.New("file exists")), "continue download")
	g.Expect(errors.Is(err, ErrDestinationDeniedOrInvalid)).To(BeTrue())
	g.Expect(errors.Is(err, ErrTransportCanceled)).To(BeFalse())

	kind, ok := KindOf(err)
	g.Expect(ok).To(BeTrue())
	g.Expect(kind).To(Equal(DestinationDeniedOrInvalid))

	_, ok = KindOf(errors.New("plain"))
	g.Expect(ok).To(BeFalse())
}

func TestKindError_UnknownKindCode(t *testing.T) {
	g := NewWithT(t)
	got := NewKindError("Other", errors.New("x"))
	g.Expect(got.Code()).To(Equal(http.StatusInternalServerError))
}

func TestWrapCanceledErr(t *testing.T) {
	g := NewWithT(t)

	err := WrapCanceledErr(context.Canceled, "load")
	g.Expect(err).To(MatchError("load: context canceled"))
	g.Expect(errors.Is(err, ErrTransportCanceled)).To(BeTrue())

	err = WrapCanceledErr(NewMessageDeliveryFailedError(context.Canceled), "send")
	g.Expect(errors.Is(err, ErrTransportCanceled)).To(BeFalse())
	g.Expect(errors.Is(err, ErrMessageDeliveryFailed)).To(BeTrue())

	err = WrapCanceledErr(errors.New("boom"), "load")
	g.Expect(errors.Is(err, ErrTransportCanceled)).To(BeFalse())
}
