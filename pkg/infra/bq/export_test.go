package bq

var (
	BuildDescriptor = buildDescriptor
	EncodeRow       = encodeRow
)
