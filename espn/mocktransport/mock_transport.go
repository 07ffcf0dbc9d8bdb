package mocktransport

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stretchr/testify/mock"
)

// Transport is a testify mock of espn.Transport.
type Transport struct {
	mock.Mock
}

func (t *Transport) Do(ctx context.Context, path string, query url.Values, header http.Header) (int, []byte, error) {
	args := t.Called(ctx, path, query, header)

	var body []byte
	if args.Get(1) != nil {
		body = args.Get(1).([]byte)
	}

	return args.Int(0), body, args.Error(2)
}
