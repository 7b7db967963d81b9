package fsx

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/hxann/go-toolbox/pkg/hash"
	"github.com/hxann/go-toolbox/pkg/pool/byteslice"
)

const copyBufferSize = 32 * 1024

// Copy copies src to dst on the same filesystem, creating or truncating dst.
// Returns the number of bytes copied.
func Copy(fs afero.Fs, src, dst string) (int64, error) {
	in, err := fs.Open(src)
	if err != nil {
		return 0, errors.Wrapf(err, "open %s", src)
	}
	defer in.Close()

	out, err := fs.Create(dst)
	if err != nil {
		return 0, errors.Wrapf(err, "create %s", dst)
	}

	buf := byteslice.Get(copyBufferSize)
	n, err := io.CopyBuffer(out, in, buf)
	byteslice.Put(buf)
	if err != nil {
		out.Close()
		return n, errors.Wrapf(err, "copy %s to %s", src, dst)
	}

	if err := out.Close(); err != nil {
		return n, errors.Wrapf(err, "close %s", dst)
	}
	return n, nil
}

// Checksum streams the file at name through a 64-bit hash and returns the sum.
func Checksum(fs afero.Fs, name string) (uint64, error) {
	f, err := fs.Open(name)
	if err != nil {
		return 0, errors.Wrapf(err, "open %s", name)
	}
	defer f.Close()

	d := hash.NewDigest()
	buf := byteslice.Get(copyBufferSize)
	defer byteslice.Put(buf)

	for {
		n, err := f.Read(buf)
		if n > 0 {
			d.WriteBytes(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, errors.Wrapf(err, "read %s", name)
		}
	}
	return d.Sum64(), nil
}
