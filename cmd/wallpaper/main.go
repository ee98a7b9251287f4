// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

// Command wallpaper renders the standard sample images and composes
// wallpapers from image files using the four placement policies.
package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/kovidgoyal/go-parallel"
	"github.com/kovidgoyal/imaging"
	"github.com/spf13/cobra"

	"github.com/kovidgoyal/wallpaper"
	"github.com/kovidgoyal/wallpaper/samples"
	"github.com/kovidgoyal/wallpaper/tools/utils/images"
)

var _ = fmt.Print

func open_image(path string) (img image.Image, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return imaging.Decode(f, imaging.AutoOrientation(true))
}

func save_image(img image.Image, path string) (err error) {
	mime := images.MimeTypeForPath(path)
	if !images.EncodableImageTypes[mime] {
		return fmt.Errorf("Cannot determine an encodable image format from the file name: %s", filepath.Base(path))
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = images.Encode(f, img, mime); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func render_sample(spec samples.Spec, cache_dir string, max_cache_entries int) (*image.NRGBA, error) {
	if cache_dir == "" {
		return samples.Render(spec)
	}
	return images.CachedImage(cache_dir, spec.CacheKey(), max_cache_entries, func() (*image.NRGBA, error) {
		return samples.Render(spec)
	})
}

func generate_samples(output_dir, cache_dir string, max_cache_entries int) error {
	if err := os.MkdirAll(output_dir, 0755); err != nil {
		return err
	}
	if cache_dir != "" {
		if err := os.MkdirAll(cache_dir, 0755); err != nil {
			return err
		}
	}
	specs := samples.Standard()
	errs := make([]error, len(specs))
	process := func(i int) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = parallel.Format_stacktrace_on_panic(r, 1)
			}
		}()
		img, err := render_sample(specs[i], cache_dir, max_cache_entries)
		if err != nil {
			return err
		}
		return save_image(img, filepath.Join(output_dir, specs[i].Name+".png"))
	}
	ctx := images.Context{}
	ctx.Parallel(0, len(specs), func(idxs <-chan int) {
		for i := range idxs {
			errs[i] = process(i)
		}
	})
	return errors.Join(errs...)
}

func samples_command() *cobra.Command {
	var output_dir, cache_dir string
	var max_cache_entries int
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Render the standard sample images as PNG files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate_samples(output_dir, cache_dir, max_cache_entries)
		},
	}
	cmd.Flags().StringVarP(&output_dir, "output-dir", "o", ".", "directory to write the sample images into")
	cmd.Flags().StringVar(&cache_dir, "cache-dir", "", "directory to cache rendered samples in, empty disables caching")
	cmd.Flags().IntVar(&max_cache_entries, "max-cache-entries", 32, "maximum number of cached renders to keep")
	return cmd
}

func compose_command() *cobra.Command {
	var output, background_anchor, foreground_anchor string
	cmd := &cobra.Command{
		Use:   "compose MODE BACKGROUND FOREGROUND",
		Short: "Compose a wallpaper from a background and a foreground image",
		Long: `Compose a wallpaper from a background and a foreground image.

MODE is one of: stretch, scale, shift, tile. The anchors used by shift and
tile are one of: center, top, bottom, left, right, top-left, top-right,
bottom-left, bottom-right.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := wallpaper.ModeFromString(args[0])
			if err != nil {
				return err
			}
			background_pos, ok := wallpaper.Anchors[background_anchor]
			if !ok {
				return fmt.Errorf("unknown anchor: %#v", background_anchor)
			}
			foreground_pos, ok := wallpaper.Anchors[foreground_anchor]
			if !ok {
				return fmt.Errorf("unknown anchor: %#v", foreground_anchor)
			}
			background, err := open_image(args[1])
			if err != nil {
				return err
			}
			foreground, err := open_image(args[2])
			if err != nil {
				return err
			}
			result, err := wallpaper.Compose(mode, background, foreground, background_pos, foreground_pos)
			if err != nil {
				return err
			}
			return save_image(result, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "wallpaper.png", "path of the output image, the extension selects the format")
	cmd.Flags().StringVar(&background_anchor, "background-anchor", "center", "where in the background the foreground is anchored")
	cmd.Flags().StringVar(&foreground_anchor, "foreground-anchor", "center", "which point of the foreground is placed on the background anchor")
	return cmd
}

func main() {
	root := &cobra.Command{
		Use:           "wallpaper",
		Short:         "Place a foreground image onto a background image",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(samples_command(), compose_command())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
