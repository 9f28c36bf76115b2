package memory

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/nftexplorer/base/ctx"
	"github.com/x-xyz/nftexplorer/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.im = NewMemory("", 10*time.Millisecond)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSetGet() {
	ts.NoError(ts.im.Set(mockCtx, "key", []byte("value"), time.Minute))

	v, ttl, err := ts.im.Get(mockCtx, "key")
	ts.NoError(err)
	ts.Equal([]byte("value"), v)
	ts.True(ttl > 0 && ttl <= time.Minute)
}

func (ts *testsuite) TestExpire() {
	ts.NoError(ts.im.Set(mockCtx, "key", []byte("value"), 50*time.Millisecond))
	time.Sleep(100 * time.Millisecond)

	_, _, err := ts.im.Get(mockCtx, "key")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestNoExpiration() {
	ts.NoError(ts.im.Set(mockCtx, "key", []byte("value"), 0))

	_, ttl, err := ts.im.Get(mockCtx, "key")
	ts.NoError(err)
	ts.Equal(time.Duration(0), ttl)
}

func (ts *testsuite) TestLargeEntry() {
	v := []byte(strings.Repeat("a", 8<<20))
	ts.NoError(ts.im.Set(mockCtx, "key", v, time.Minute))

	r, _, err := ts.im.Get(mockCtx, "key")
	ts.NoError(err)
	ts.Len(r, len(v))
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "key", []byte("value"), time.Minute))
	ts.NoError(ts.im.Del(mockCtx, "key"))

	_, _, err := ts.im.Get(mockCtx, "key")
	ts.Equal(provider.ErrNotFound, err)
}
