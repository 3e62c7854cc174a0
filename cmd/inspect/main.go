// Inspect fetches one Moo page and prints what the player reads from it:
// the control descriptor, the key destinations, the audio source and, with
// -download, the tags of the track. With -history or -clear-history it
// works on the local visit history instead and fetches nothing.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/moo/internal/client"
	"github.com/llehouerou/moo/internal/config"
	"github.com/llehouerou/moo/internal/control"
	"github.com/llehouerou/moo/internal/keymap"
	"github.com/llehouerou/moo/internal/navigate"
	"github.com/llehouerou/moo/internal/player"
	"github.com/llehouerou/moo/internal/tags"
)

func main() {
	server := flag.String("server", "", "Moo server URL (default from config)")
	download := flag.Bool("download", false, "download the track and print its tags")
	keys := flag.Bool("keys", false, "print the key table")
	last := flag.Int("history", 0, "print the last N visited pages and exit")
	clearHistory := flag.Bool("clear-history", false, "forget the visited pages and exit")
	flag.Parse()

	if *last > 0 || *clearHistory {
		if err := runHistory(os.Stdout, *last, *clearHistory); err != nil {
			log.Fatalf("History: %v", err)
		}
		return
	}

	path := "/"
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *server == "" {
		*server = cfg.GetServer()
	}

	c, err := client.New(*server)
	if err != nil {
		log.Fatalf("Invalid server: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	p, err := c.Load(ctx, path)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", path, err)
	}
	fmt.Printf("page:   %s\ntitle:  %s\n", p.Path, p.Doc.Title())

	ctl, err := control.FromDocument(p.Doc)
	switch {
	case errors.Is(err, control.ErrNoControl):
		fmt.Println("control: none")
	case err != nil:
		fmt.Printf("control: malformed: %v\n", err)
		printControl(ctl)
	default:
		printControl(ctl)
	}
	printDestinations(navigate.New(ctl))

	src, ok := player.SourceOf(p.Doc)
	if !ok {
		fmt.Println("audio:  none")
	} else {
		fmt.Printf("audio:  %s (%s)\n", src.Src, mediaType(src))
	}

	if *keys {
		printKeys()
	}

	if *download && ok {
		u, err := c.Resolve(p.URL, src.Src)
		if err != nil {
			log.Fatalf("Bad audio source: %v", err)
		}
		dir, err := os.MkdirTemp("", "moo-inspect-")
		if err != nil {
			log.Fatalf("Failed to create temp dir: %v", err)
		}
		defer os.RemoveAll(dir)

		local, err := player.NewCache(dir, 0, c).Fetch(ctx, u)
		if err != nil {
			log.Fatalf("Failed to download track: %v", err)
		}
		printTags(local)
	}
}

func mediaType(src player.Source) string {
	if src.Type != "" {
		return src.Type
	}
	ext := strings.TrimPrefix(filepath.Ext(src.Src), ".")
	if t := player.MediaType(ext); t != "" {
		return t
	}
	return "unknown type"
}

func printControl(d *control.Descriptor) {
	fmt.Printf("control: %s, %d tracks\n", d.Kind(), d.NTracks)
	if d.Kind() == control.KindPlaylist {
		fmt.Printf("  name=%s mode=%s index=%d shuffle=%v\n", d.Name, d.Mode, d.Index, d.Shuffle)
		return
	}
	fmt.Printf("  alkey=%s next=%d prev=%d rtrack=%d ralbum=%s\n", d.AlKey, d.Next, d.Prev, d.RTrack, d.RAlbum)
}

func printDestinations(r *navigate.Resolver) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()
	for _, d := range []struct {
		name string
		fn   func() (string, bool)
	}{
		{"next", r.Next},
		{"prev", r.Prev},
		{"random", r.Random},
		{"random track", r.RandomTrack},
		{"random album", r.RandomAlbum},
		{"repeat", r.Repeat},
		{"shuffle", r.Shuffle},
		{"cover", r.Cover},
	} {
		dest, ok := d.fn()
		if !ok {
			dest = "-"
		}
		fmt.Fprintf(w, "  %s\t%s\n", d.name, dest)
	}
}

func printKeys() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()
	for _, ctx := range keymap.Contexts {
		for _, b := range keymap.ByContext(ctx) {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", ctx, strings.Join(b.Keys, " "), b.Description)
		}
	}
}

func printTags(path string) {
	fi, err := os.Stat(path)
	if err != nil {
		log.Fatalf("Failed to stat track: %v", err)
	}
	t, err := tags.Read(path)
	if err != nil {
		log.Fatalf("Failed to read tags: %v", err)
	}
	fmt.Printf("file:   %s\n", humanize.Bytes(uint64(fi.Size()))) //nolint:gosec // file sizes are positive
	fmt.Printf("track:  %s\n", t.Display())
	if t.Album != "" {
		fmt.Printf("album:  %s (%s)\n", t.Album, t.Date)
	}
	if t.Genre != "" {
		fmt.Printf("genre:  %s\n", t.Genre)
	}
	if n := t.Number(); n != "" {
		fmt.Printf("number: %s\n", n)
	}
}
