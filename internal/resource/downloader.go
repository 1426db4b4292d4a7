package resource

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 30 * time.Second

func newClient(timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "text/plain")
}

// Downloads the document under given URL. Any non 2xx answer is an error.
func download(ctx context.Context, client *resty.Client, url string) ([]byte, error) {
	response, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download %s", url)
	}

	if !response.IsSuccess() {
		return nil, errors.Newf("failed to download %s: %s", url, response.Status())
	}

	return response.Body(), nil
}
