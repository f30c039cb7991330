package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedSchema is returned when an EXSD document is not well-formed XML or its root is not a schema.
	ErrMalformedSchema = zerr.New("malformed schema document")

	// ErrMissingMetaSchema is returned when the schema lacks the meta.schema annotation or its required attributes.
	ErrMissingMetaSchema = zerr.New("missing meta.schema annotation")

	// ErrInvalidLocator is returned when a schema location does not match schema://<bundle>/<path>.
	ErrInvalidLocator = zerr.New("invalid schema locator")

	// ErrSchemaNotFound is returned when a schema location cannot be resolved to a file.
	ErrSchemaNotFound = zerr.New("schema not found")

	// ErrElementNotFound is returned when a referenced element is not defined by a schema or its includes.
	ErrElementNotFound = zerr.New("element not found")

	// ErrDecodeFailed is returned when a persisted definition cannot be decoded.
	ErrDecodeFailed = zerr.New("failed to decode definition")

	// ErrEncodeFailed is returned when a definition cannot be encoded.
	ErrEncodeFailed = zerr.New("failed to encode definition")

	// ErrFileOpenFailed is returned when a schema file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrManifestReadFailed is returned when a bundle manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read bundle manifest")

	// ErrIndexOpenFailed is returned when the definition index cannot be opened.
	ErrIndexOpenFailed = zerr.New("failed to open definition index")

	// ErrIndexReadFailed is returned when reading from the definition index fails.
	ErrIndexReadFailed = zerr.New("failed to read definition index")

	// ErrIndexWriteFailed is returned when writing to the definition index fails.
	ErrIndexWriteFailed = zerr.New("failed to write definition index")

	// ErrPrimeFailed is returned when priming a module fails.
	ErrPrimeFailed = zerr.New("failed to prime module")
)

var (
	// ErrInvalidConfig is returned when the configuration contains invalid values.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrWatchFailed is returned when file watching cannot be started.
	ErrWatchFailed = zerr.New("failed to watch files")

	// ErrPrimeInProgress is returned when a priming run is started while another one is running.
	ErrPrimeInProgress = zerr.New("priming already in progress")
)
