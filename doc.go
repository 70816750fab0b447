/*
Package tops resolves external top definitions from a document store.
Given an options mapping and a requester identity, it builds a client
through a pluggable driver and returns the environments and top entries
that apply to that identity.

The query path is built on top of gocloud.dev docstore. Drivers register
themselves under a provider name; importing a driver package makes the
provider available:

	import _ "github.com/exttops/tops-go-cloud-adapter/drivers/mongotops"

For more information on the Go CDK and the Go CDK Docstore package, visit:
- Go CDK: https://gocloud.dev/
- Go CDK Docstore: https://gocloud.dev/howto/docstore/
*/
package tops
