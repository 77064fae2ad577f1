// Command rrem packs one or more input files into a single .rres resource
// container. Invocation:
//
//	rrem [OPTIONS] FILE[:COMP[:CIPHER[:RAW[:ID]]]] ...
//
// Per-file suffix parameters override the --comp/-c default; missing
// fields take defaults. The diagnostic-output idiom — pterm.Error/Info/
// Warning + a header banner — mirrors how other commands in this module
// family report progress.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/bpfs/rres"
	"github.com/bpfs/rres/zip/gzip"
)

const version = "rrem 1.0 (rres packer)"

type fileSpec struct {
	path   string
	comp   rres.CompType
	cipher rres.CipherType
	raw    bool
	id     uint32
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(args []string) error {
	output := "data.rres"
	defaultComp := rres.CompNone
	includeDir := true
	showStats := false
	var specs []fileSpec

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--help" || a == "-h":
			printUsage()
			os.Exit(0)
		case a == "--version" || a == "-v":
			pterm.Println(version)
			os.Exit(0)
		case a == "--no-cdir":
			includeDir = false
		case a == "--stats":
			showStats = true
		case a == "--output" || a == "-o":
			i++
			if i >= len(args) {
				return fmt.Errorf("--output requires a path")
			}
			output = args[i]
		case a == "--comp" || a == "-c":
			i++
			if i >= len(args) {
				return fmt.Errorf("--comp requires a name")
			}
			c, err := parseComp(args[i])
			if err != nil {
				return err
			}
			defaultComp = c
		case strings.HasPrefix(a, "-"):
			return fmt.Errorf("unrecognized flag: %s", a)
		default:
			spec, err := parseFileSpec(a, defaultComp)
			if err != nil {
				return err
			}
			specs = append(specs, spec)
		}
	}

	if len(specs) == 0 {
		printUsage()
		return fmt.Errorf("no input files given")
	}

	chunks := make([]rres.ChunkSpec, 0, len(specs))
	pterm.DefaultHeader.Println("rrem — packing " + strconv.Itoa(len(specs)) + " file(s)")

	for _, s := range specs {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", s.path, err)
		}
		name := filepath.Base(s.path)
		id := s.id
		if id == 0 {
			id = rres.Hash(name)
		}

		chunkType := rres.TypeRawData
		props := []uint32{uint32(len(data))}
		if s.raw {
			chunkType = rres.TypeText
			props = []uint32{uint32(len(data)), 0, 0, 0}
		}

		chunks = append(chunks, rres.ChunkSpec{
			Type:       chunkType,
			ID:         id,
			Props:      props,
			Raw:        data,
			CompType:   s.comp,
			CipherType: s.cipher,
			FileName:   name,
		})

		pterm.Info.Printf("%s -> id=%#08x comp=%d cipher=%d (%d bytes)\n", name, id, s.comp, s.cipher, len(data))

		if showStats {
			gz, err := gzip.CompressData(data)
			if err != nil {
				pterm.Warning.Printf("  stats: gzip comparison failed: %v\n", err)
			} else {
				pterm.Println(fmt.Sprintf("  stats: gzip-equivalent size %d bytes (for comparison only; on-disk chunk uses raw DEFLATE, not gzip)", len(gz)))
			}
		}
	}

	// Each spec already carries its resolved compression (suffix or --comp
	// default), so the writer must not replace an explicit per-file NONE.
	opts := rres.WriteOptions{IncludeDirectory: includeDir, DefaultComp: rres.CompNone, DefaultCipher: rres.CipherNone}
	if err := rres.Write(output, chunks, opts); err != nil {
		os.Remove(output)
		return fmt.Errorf("writing %s: %w", output, err)
	}

	pterm.Success.Printf("wrote %s\n", output)
	return nil
}

// parseFileSpec parses the FILE[:COMP[:CIPHER[:RAW[:ID]]]] grammar.
func parseFileSpec(arg string, defaultComp rres.CompType) (fileSpec, error) {
	parts := strings.Split(arg, ":")
	spec := fileSpec{path: parts[0], comp: defaultComp, cipher: rres.CipherNone}

	if len(parts) > 1 && parts[1] != "" {
		c, err := parseComp(parts[1])
		if err != nil {
			return fileSpec{}, err
		}
		spec.comp = c
	}
	if len(parts) > 2 && parts[2] != "" {
		c, err := parseCipher(parts[2])
		if err != nil {
			return fileSpec{}, err
		}
		spec.cipher = c
	}
	if len(parts) > 3 && parts[3] != "" {
		spec.raw = parts[3] == "1" || strings.EqualFold(parts[3], "true")
	}
	if len(parts) > 4 && parts[4] != "" {
		id, err := strconv.ParseUint(parts[4], 0, 32)
		if err != nil {
			return fileSpec{}, fmt.Errorf("bad id %q: %w", parts[4], err)
		}
		spec.id = uint32(id)
	}
	return spec, nil
}

func parseComp(name string) (rres.CompType, error) {
	switch strings.ToUpper(name) {
	case "NONE":
		return rres.CompNone, nil
	case "DEFLATE":
		return rres.CompDeflate, nil
	case "SNAPPY":
		return rres.CompSnappy, nil
	case "RLE", "LZ4", "LZMA2", "BZIP2":
		return 0, fmt.Errorf("compression %s recognized but not built into this binary", name)
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

func parseCipher(name string) (rres.CipherType, error) {
	switch strings.ToUpper(name) {
	case "NONE":
		return rres.CipherNone, nil
	case "XOR":
		return rres.CipherXOR, nil
	case "AES":
		return rres.CipherAES, nil
	case "AESGCM":
		return rres.CipherAESGCM, nil
	case "XCHACHA20":
		return rres.CipherXChaCha20, nil
	default:
		return 0, fmt.Errorf("unknown cipher %q", name)
	}
}

func printUsage() {
	pterm.DefaultHeader.Println("rrem — rres packer")
	pterm.Println("Usage: rrem [OPTIONS] FILE[:COMP[:CIPHER[:RAW[:ID]]]] ...")
	pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
		{Level: 0, Text: "--help, -h            print usage and exit"},
		{Level: 0, Text: "--version, -v         print version and exit"},
		{Level: 0, Text: "--output, -o PATH     destination file (default data.rres)"},
		{Level: 0, Text: "--comp, -c NAME       default compression: NONE|DEFLATE|SNAPPY"},
		{Level: 0, Text: "--no-cdir             skip the central directory chunk"},
		{Level: 0, Text: "--stats               print a gzip-equivalent size comparison per file"},
	}).Render()
}
