package compress

import "fmt"

// Type identifies a compression algorithm usable for a snapshot export.
type Type uint8

const (
	None Type = 0x1
	Zstd Type = 0x2
	S2   Type = 0x3
	LZ4  Type = 0x4
)

func (t Type) String() string {
	switch t {
	case None:
		return "None"
	case Zstd:
		return "Zstd"
	case S2:
		return "S2"
	case LZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses a byte slice. The input slice is never modified;
// NoOpCompressor returns it as-is, the other implementations return a
// newly allocated result.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor. It returns an error if data is
// corrupted or was not produced by the matching algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression for one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec builds a Codec for the given Type.
//
// target describes the caller in error messages (e.g. "snapshot export").
func CreateCodec(t Type, target string) (Codec, error) {
	switch t {
	case None:
		return NewNoOpCompressor(), nil
	case Zstd:
		return NewZstdCompressor(), nil
	case S2:
		return NewS2Compressor(), nil
	case LZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, t)
	}
}

var builtinCodecs = map[Type]Codec{
	None: NewNoOpCompressor(),
	Zstd: NewZstdCompressor(),
	S2:   NewS2Compressor(),
	LZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}
