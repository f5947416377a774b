package catalog

import (
	"errors"
	"net/http"

	"github.com/punyakios/go-kios-client/internal/common"
)

type Kind int

const (
	KindGeneric Kind = iota
	KindTechnical
	KindSessionExpired
	KindServiceUnavailable
	KindNoConnection
	KindMalformed
)

var messages = map[Kind]string{
	KindGeneric:            "Gagal memuat daftar provider. Silakan coba beberapa saat lagi.",
	KindTechnical:          "Terjadi kesalahan teknis. Silakan coba beberapa saat lagi.",
	KindSessionExpired:     "Sesi Anda telah berakhir. Silakan login kembali.",
	KindServiceUnavailable: "Layanan sementara tidak tersedia. Silakan coba beberapa saat lagi.",
	KindNoConnection:       "Periksa koneksi internet Anda dan coba lagi.",
	KindMalformed:          "Struktur data tidak sesuai. Silakan hubungi administrator.",
}

func (k Kind) String() string {
	switch k {
	case KindTechnical:
		return "technical"
	case KindSessionExpired:
		return "session_expired"
	case KindServiceUnavailable:
		return "service_unavailable"
	case KindNoConnection:
		return "no_connection"
	case KindMalformed:
		return "malformed"
	default:
		return "generic"
	}
}

// FetchError is returned only when a catalog could not be loaded and nothing was cached.
// Error returns the message meant for the user.
type FetchError struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func classify(err error) *FetchError {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}

	status := common.StatusCode(err)
	kind := KindGeneric
	switch {
	case errors.Is(err, common.ErrMalformedResponse):
		kind = KindMalformed
	case status == http.StatusMethodNotAllowed:
		kind = KindTechnical
	case status == http.StatusUnauthorized:
		kind = KindSessionExpired
	case status == http.StatusNotFound:
		kind = KindServiceUnavailable
	case status == 0 && errors.Is(err, common.ErrNetworkUnreachable):
		kind = KindNoConnection
	}

	return &FetchError{
		Kind:       kind,
		StatusCode: status,
		Message:    messages[kind],
		Err:        err,
	}
}

func isClientError(err error) bool {
	status := common.StatusCode(err)
	return status >= http.StatusBadRequest && status < http.StatusInternalServerError
}
