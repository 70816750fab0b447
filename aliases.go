package tops

import "gocloud.dev/docstore/driver"

const (
	// EqualOp is the operator for equality.
	EqualOp = driver.EqualOp
)
