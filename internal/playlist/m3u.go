package playlist

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/ushis/m3u"
)

// ExportM3U writes the playlist as an extended M3U file. Songs have no
// backing file, so each entry's path is its name.
func ExportM3U(w io.Writer, s State) error {
	plist := make(m3u.Playlist, len(s.Songs))
	for i, song := range s.Songs {
		plist[i] = m3u.Track{
			Title: song.Name,
			Path:  song.Name,
			Time:  0,
		}
	}

	if _, err := plist.WriteTo(w); err != nil {
		return errors.Wrap(err, "failed to write playlist")
	}
	return nil
}

// ImportM3U reads song names from an M3U file. Tracks without a title use
// the base name of their path without its extension. Entries with neither
// are skipped.
func ImportM3U(r io.Reader) ([]string, error) {
	p, err := m3u.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse playlist")
	}

	names := make([]string, 0, len(p))
	for _, track := range p {
		title := strings.TrimSpace(track.Title)
		if title == "" && track.Path != "" {
			base := filepath.Base(track.Path)
			title = strings.TrimSpace(strings.TrimSuffix(base, filepath.Ext(base)))
		}
		if title == "" {
			continue
		}
		names = append(names, title)
	}
	return names, nil
}
