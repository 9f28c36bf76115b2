package keys

import "testing"

func TestCacheKey(t *testing.T) {
	if got := CacheKey(PfxSession, "abc"); got != "session:abc" {
		t.Errorf("CacheKey() = %v", got)
	}
	if got := CacheKey(PfxEns, "reverse", "0xabc"); got != "ens:reverse:0xabc" {
		t.Errorf("CacheKey() = %v", got)
	}
}
