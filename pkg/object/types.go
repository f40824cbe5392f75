package object

// Hash is a 64-character hex-encoded SHA-256 digest.
type Hash string

// ObjectType identifies the kind of object stored.
type ObjectType string

const (
	TypeBlob   ObjectType = "blob"
	TypeCommit ObjectType = "commit"
	TypeTag    ObjectType = "tag"
)

// Blob holds raw file data.
type Blob struct {
	Data []byte
}

// CommitObj represents a commit pointing to a tree with metadata.
type CommitObj struct {
	TreeHash  Hash
	Parents   []Hash
	Author    string
	Timestamp int64
	Message   string
}

// TagObj preserves an annotated tag payload while tracking the referenced
// object. Data stores the canonical tag text; TargetHash is what peeling
// follows, so tag chains can be walked without parsing the payload.
type TagObj struct {
	TargetHash Hash
	Data       []byte
}
