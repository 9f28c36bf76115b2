package repository

import (
	"net/http"
	"strings"
	"time"

	bCtx "github.com/x-xyz/nftexplorer/base/ctx"
	"github.com/x-xyz/nftexplorer/domain"
	"golang.org/x/xerrors"
)

const (
	arUriSchema    = "ar://"
	arweaveGateway = "https://arweave.net/"
)

type arReaderRepo struct {
	client     *http.Client
	ctxTimeout time.Duration
	headers    map[string]string
}

func NewArReaderRepo(client *http.Client, timeout time.Duration, headers map[string]string) domain.WebResourceReaderRepository {
	return &arReaderRepo{client: client, ctxTimeout: timeout, headers: headers}
}

func (r *arReaderRepo) Get(c bCtx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, arUriSchema) {
		return nil, xerrors.Errorf("invalid ar uri")
	}
	url := strings.Replace(uri, arUriSchema, arweaveGateway, 1)
	return get(c, r.client, url, r.ctxTimeout, r.headers)
}
