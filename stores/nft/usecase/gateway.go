package usecase

import "fmt"

const (
	DefaultGatewayHost = "ipfs.io"

	ipfsTag = "ipfs"
	// length of "ipfs://"; other schemes starting with "ipfs" lose the same 7 characters
	ipfsPrefixLen = 7
)

// RewriteGatewayURI turns an ipfs uri into a fetchable https gateway url and leaves
// every other uri unchanged
func RewriteGatewayURI(uri, gatewayHost string) string {
	if len(uri) < ipfsPrefixLen || uri[:len(ipfsTag)] != ipfsTag {
		return uri
	}
	return fmt.Sprintf("https://%s/ipfs/%s", gatewayHost, uri[ipfsPrefixLen:])
}

// GatewayBase is the url prefix cids are appended to, an empty host means DefaultGatewayHost
func GatewayBase(gatewayHost string) string {
	if len(gatewayHost) == 0 {
		gatewayHost = DefaultGatewayHost
	}
	return fmt.Sprintf("https://%s/ipfs", gatewayHost)
}
