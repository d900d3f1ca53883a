package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"booksite/booksite"

	"github.com/gosimple/slug"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	var (
		host = flag.String("host", "localhost", "Host header to render for")
		dir  = flag.StringP("dir", "d", ".", "Directory to write into")
		out  = flag.StringP("out", "o", "", "Output file, or - for stdout (default <host>.html)")
	)
	flag.Parse()

	fs := afero.NewOsFs()

	config, err := booksite.LoadConfig(fs, booksite.ConfigFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *out == "-" {
		if err := booksite.Render(os.Stdout, config, config.Host(*host)); err != nil {
			log.Fatalf("Failed to render page: %v", err)
		}
		return
	}

	path, err := export(afero.NewBasePathFs(fs, *dir), config, *host, *out)
	if err != nil {
		log.Fatalf("Failed to export page: %v", err)
	}

	fmt.Fprintf(os.Stderr, "Exported %s\n", filepath.Join(*dir, path))
}

// export renders the page for host into fs and returns the file name used.
func export(fs afero.Fs, config *booksite.Config, host string, name string) (string, error) {
	if name == "" {
		name = outputName(host)
	}

	file, err := fs.Create(name)
	if err != nil {
		return "", err
	}

	if err := booksite.Render(file, config, config.Host(host)); err != nil {
		file.Close()
		return "", err
	}

	return name, file.Close()
}

func outputName(host string) string {
	name := slug.Make(host)
	if name == "" {
		name = "index"
	}

	return name + ".html"
}
