package domain

// CacheTier identifies which source served a definition lookup.
type CacheTier uint8

const (
	// TierUnresolved means the file has not been looked up since the last clear.
	TierUnresolved CacheTier = iota
	// TierIndexed means the definition came from the authoritative index.
	TierIndexed
	// TierStale means the index was unavailable and the last-known-good value was served.
	TierStale
	// TierComputed means the definition was parsed on demand from the file.
	TierComputed
)

// String returns the lowercase tier name.
func (t CacheTier) String() string {
	switch t {
	case TierIndexed:
		return "indexed"
	case TierStale:
		return "stale"
	case TierComputed:
		return "computed"
	default:
		return "unresolved"
	}
}

// FileStamp captures the modification state a cached value is tied to.
type FileStamp struct {
	Size    int64
	ModTime int64
	Hash    uint64
}
