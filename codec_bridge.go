package rres

import (
	"errors"
	"fmt"

	"github.com/bpfs/rres/codec"
)

// translateCodecErr maps the codec package's sentinel errors onto this
// package's public error taxonomy, preserving the wrapped message for
// diagnostics.
func translateCodecErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, codec.ErrUnsupportedCompression):
		return fmt.Errorf("%w: %v", ErrUnsupportedCompress, err)
	case errors.Is(err, codec.ErrUnsupportedCipher):
		return fmt.Errorf("%w: %v", ErrUnsupportedCipher, err)
	case errors.Is(err, codec.ErrDecompressionFailed):
		return fmt.Errorf("%w: %v", ErrDecompressionFailed, err)
	case errors.Is(err, codec.ErrDecryptionFailed):
		return fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	case errors.Is(err, codec.ErrNoPassword):
		return fmt.Errorf("%w: %v", ErrNoPassword, err)
	default:
		return err
	}
}
