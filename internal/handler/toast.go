package handler

import (
	"context"

	"github.com/templui/brightlog/internal/ctxkeys"
	"github.com/templui/brightlog/internal/i18n"
	"github.com/templui/brightlog/internal/ui/components/toast"
)

func successToast(ctx context.Context, key string) toast.Props {
	p := ctxkeys.Printer(ctx)
	return toast.Props{
		Title:       p.Sprintf(i18n.ToastSuccess),
		Description: p.Sprintf(key),
		Variant:     toast.VariantSuccess,
		Dismissible: true,
	}
}

func errorToast(ctx context.Context, key string) toast.Props {
	p := ctxkeys.Printer(ctx)
	return toast.Props{
		Title:       p.Sprintf(i18n.ToastError),
		Description: p.Sprintf(key),
		Variant:     toast.VariantError,
		Dismissible: true,
	}
}
