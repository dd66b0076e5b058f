package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"blogfront/internal/config"
	"blogfront/internal/models"
	"blogfront/internal/repository"
	"blogfront/internal/reqctx"
	"blogfront/internal/services"

	"github.com/spf13/cobra"
)

var (
	postsSearch   string
	postsCategory string
	postsTag      string
	postsToken    string
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Print posts matching a search, category or tag",
	Long: `Fetches all posts from the blog API and applies the same filter as the
home page. --category and --tag reset each other; --tag wins when both
are given.

Examples:
  blogfront posts --search go
  blogfront posts --tag diet
  BLOG_TOKEN=... blogfront posts --category Tech`,
	RunE: runPosts,
}

func init() {
	postsCmd.Flags().StringVarP(&postsSearch, "search", "s", "", "search in title, category and tags")
	postsCmd.Flags().StringVarP(&postsCategory, "category", "c", "", "category: "+strings.Join(models.Categories, ", "))
	postsCmd.Flags().StringVarP(&postsTag, "tag", "t", "", "tag (case-insensitive)")
	postsCmd.Flags().StringVar(&postsToken, "token", "", "bearer token (default $BLOG_TOKEN)")
}

func runPosts(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if _, err := cfg.Validate(); err != nil {
		return err
	}
	timeout, err := cfg.Timeout()
	if err != nil {
		return err
	}

	f, err := postsFilter(postsSearch, postsCategory, postsTag)
	if err != nil {
		return err
	}

	token := postsToken
	if token == "" {
		token = os.Getenv("BLOG_TOKEN")
	}

	blogs := services.NewBlogService(repository.NewBlogRepo(repository.NewClient(cfg.APIBaseURL, timeout)))
	return listPosts(cmd.Context(), cmd.OutOrStdout(), blogs, f, token)
}

// postsFilter собирает FilterState так же, как клики на главной:
// сначала категория, потом тег.
func postsFilter(search, category, tag string) (models.FilterState, error) {
	f := models.NewFilterState().WithSearch(search)
	if category != "" {
		if category != models.CategoryAll && !models.IsCategory(category) {
			return f, fmt.Errorf("unknown category %q (want one of %s)", category, strings.Join(models.Categories, ", "))
		}
		f = f.WithCategory(category)
	}
	if tag != "" {
		f = f.WithTag(tag)
	}
	return f, nil
}

func listPosts(ctx context.Context, out io.Writer, blogs *services.BlogService, f models.FilterState, token string) error {
	if token != "" {
		ctx = reqctx.WithToken(ctx, token)
	}

	listing, err := blogs.List(ctx, f)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tTAGS\tAUTHOR")
	for _, p := range listing.Visible {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Category, strings.Join(p.Tags, ","), p.Author.Display())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%d of %d posts\n", len(listing.Visible), listing.Total)
	return err
}
