package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/encore/internal/nav"
	"github.com/manav03panchal/encore/internal/playlist"
	"github.com/manav03panchal/encore/internal/settings"
)

// completeSongs completes song names, best fuzzy match first.
func completeSongs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if ctx == nil || ctx.Playlist == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, m := range playlist.Search(ctx.Playlist.State(), toComplete) {
		completions = append(completions, m.Song.Name+"\t"+strconv.FormatInt(m.Song.ID, 10))
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeRoutes completes screen names by their last path segment.
func completeRoutes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, r := range nav.Routes {
		name := r.Path[strings.LastIndex(r.Path, "/")+1:]
		if strings.HasPrefix(name, toComplete) {
			completions = append(completions, name+"\t"+r.Title)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeSettings completes the setting name, then on or off.
func completeSettings(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return filterPrefix(settings.Names(), toComplete), cobra.ShellCompDirectiveNoFileComp
	}
	if len(args) == 1 && cmd.Name() == "set" {
		return filterPrefix([]string{"on", "off"}, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// completeFields returns a completion function for the fields of a form.
func completeFields(names func() []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 || ctx == nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return filterPrefix(names(), toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

func filterPrefix(values []string, prefix string) []string {
	var filtered []string
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
