package cmd

import (
	"errors"
	"fmt"
	"strings"

	"ev-newsroom/internal/markdown"
	"ev-newsroom/internal/model"
	"ev-newsroom/internal/paging"
	"ev-newsroom/internal/render"

	"github.com/spf13/cobra"
)

var (
	communityPage    int
	communityTitle   string
	communityContent string
	communityFile    string
)

var communityCmd = &cobra.Command{
	Use:   "community",
	Short: "Read and write community posts",
}

var communityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a page of community posts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := loadDeps(ctx)
		if err != nil {
			return err
		}
		defer d.close()

		pages := paging.NewController[model.CommunityPost](d.client.CommunityPosts, d.cfg.Paging.PageSize)
		posts, err := pages.LoadPage(ctx, communityPage)
		if err != nil {
			return err
		}
		return render.Community(cmd.OutOrStdout(), posts)
	},
}

var communityShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one community post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		d, err := loadDeps(ctx)
		if err != nil {
			return err
		}
		defer d.close()

		p, err := d.client.CommunityPost(ctx, id)
		if err != nil {
			return err
		}
		return render.Post(cmd.OutOrStdout(), p)
	},
}

var communityPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Create a community post",
	Long: "Create a community post from --title/--content, or from a Markdown file " +
		"(--file) whose frontmatter 'title' or first heading is the title.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		post, err := buildPost(communityTitle, communityContent, communityFile)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		d, err := loadDeps(ctx)
		if err != nil {
			return err
		}
		defer d.close()

		if err := d.client.CreateCommunityPost(ctx, post); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Posted %q\n", post.Title)
		return nil
	},
}

// buildPost assembles a post from flags. Flag values win over the file.
func buildPost(title, content, file string) (model.NewCommunityPost, error) {
	if file != "" {
		doc, err := markdown.ParseFile(file)
		if err != nil {
			return model.NewCommunityPost{}, fmt.Errorf("read %s: %w", file, err)
		}
		if title == "" {
			title = doc.String("title")
		}
		if title == "" {
			title = doc.Heading()
		}
		if content == "" {
			content = doc.Body
		}
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return model.NewCommunityPost{}, errors.New("title is required")
	}
	if strings.TrimSpace(content) == "" {
		return model.NewCommunityPost{}, errors.New("content is required")
	}
	return model.NewCommunityPost{Title: title, Content: content}, nil
}

func init() {
	communityListCmd.Flags().IntVar(&communityPage, "page", 1, "page number (1-based)")
	communityPostCmd.Flags().StringVar(&communityTitle, "title", "", "post title")
	communityPostCmd.Flags().StringVar(&communityContent, "content", "", "post content")
	communityPostCmd.Flags().StringVar(&communityFile, "file", "", "Markdown file with optional YAML frontmatter")

	communityCmd.AddCommand(communityListCmd, communityShowCmd, communityPostCmd)
	rootCmd.AddCommand(communityCmd)
}
