package model

// Descriptor document keys understood by the decoder and written by the
// encoder. Keys outside this set are kept only in RawContent.
const (
	KeyKind          = "Kind"
	KeyIdentifier    = "Identifier"
	KeyName          = "Name"
	KeyAncestors     = "Ancestors"
	KeyOptions       = "Options"
	KeyFileStructure = "FileStructure"
	// KeyNodes is the vendor's flat list of output paths, read when
	// FileStructure is absent.
	KeyNodes = "Nodes"

	KeyOptionIdentifier = "Identifier"
	KeyOptionName       = "Name"
	KeyOptionType       = "Type"
	KeyOptionDefault    = "Default"
	KeyOptionValues     = "Values"

	KeyNodeName     = "Name"
	KeyNodeChildren = "Children"
)
