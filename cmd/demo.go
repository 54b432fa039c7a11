package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"catalogkv/db"
	"catalogkv/logger"
	"catalogkv/model"
	"catalogkv/repository"

	"github.com/spf13/cobra"
)

var (
	demoLogin string
	demoMAC   string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "写入一组示例数据并打印",
	Long:  `创建一个用户、创作者、专辑、歌曲、设备、评分和收听记录，然后逐一读取并打印。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := db.ConnectRedis(cfg)
		if err != nil {
			return err
		}
		defer client.Close()

		return runDemo(cmd.Context(), repository.NewCatalog(client), cmd.OutOrStdout(), demoLogin, demoMAC)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVarP(&demoLogin, "login", "l", "john_doe", "示例用户登录名")
	demoCmd.Flags().StringVarP(&demoMAC, "mac", "m", "00:11:22:33:44:55", "示例设备MAC地址")
}

func runDemo(ctx context.Context, c *repository.Catalog, w io.Writer, login, mac string) error {
	track := model.TrackKey{Name: "Track1", AlbumName: "Album1", AlbumYear: "2022", AlbumAuthor: login}

	steps := []struct {
		name   string
		create func() error
		get    func() (interface{}, error)
	}{
		{
			"user",
			func() error { return c.Users.CreateUser(ctx, &model.User{Login: login}) },
			func() (interface{}, error) { return c.Users.GetUser(ctx, login) },
		},
		{
			"author",
			func() error {
				return c.Authors.CreateAuthor(ctx, &model.Author{Name: sql.NullString{String: "John Doe", Valid: true}, User: login})
			},
			func() (interface{}, error) { return c.Authors.GetAuthor(ctx, login) },
		},
		{
			"author_info",
			func() error {
				return c.Authors.CreateAuthorInfo(ctx, &model.AuthorInfo{
					Biography: sql.NullString{String: "Biography", Valid: true},
					Awards:    sql.NullString{String: "Awards", Valid: true},
					Photo:     []byte("photo"),
					Author:    login,
				})
			},
			func() (interface{}, error) { return c.Authors.GetAuthorInfo(ctx, login) },
		},
		{
			"album",
			func() error {
				return c.Albums.CreateAlbum(ctx, &model.Album{Name: track.AlbumName, ReleaseYear: track.AlbumYear, Author: login})
			},
			func() (interface{}, error) { return c.Albums.GetAlbum(ctx, track.Album()) },
		},
		{
			"track",
			func() error {
				return c.Tracks.CreateTrack(ctx, &model.Track{
					Name: track.Name, AlbumName: track.AlbumName, AlbumYear: track.AlbumYear, AlbumAuthor: track.AlbumAuthor,
				})
			},
			func() (interface{}, error) { return c.Tracks.GetTrack(ctx, track) },
		},
		{
			"device",
			func() error { return c.Devices.CreateDevice(ctx, &model.Device{MACAddress: mac}) },
			func() (interface{}, error) { return c.Devices.GetDevice(ctx, mac) },
		},
		{
			"rate",
			func() error {
				return c.Rates.CreateRate(ctx, &model.Rate{Track: track, UserLogin: login, Rating: model.MaxRating})
			},
			func() (interface{}, error) {
				return c.Rates.GetRate(ctx, model.RateKey{Track: track, UserLogin: login})
			},
		},
		{
			"ratings_by_user",
			nil,
			func() (interface{}, error) {
				return derefAll[model.Rate](c.Rates.GetAllRatingsByUser(ctx, login))
			},
		},
		{
			"listening",
			func() error {
				return c.Listenings.CreateListening(ctx, &model.Listening{Track: track, DeviceMACAddress: mac, UserLogin: login})
			},
			func() (interface{}, error) {
				return c.Listenings.GetListening(ctx, model.ListeningKey{Track: track, DeviceMACAddress: mac, UserLogin: login})
			},
		},
		{
			"listenings_by_user",
			nil,
			func() (interface{}, error) {
				return derefAll[model.Listening](c.Listenings.GetAllListeningsByUser(ctx, login))
			},
		},
		{
			"listenings_by_device",
			nil,
			func() (interface{}, error) {
				return derefAll[model.Listening](c.Listenings.GetAllListeningsByDevice(ctx, mac))
			},
		},
	}

	for _, step := range steps {
		if step.create != nil {
			if err := step.create(); err != nil {
				return fmt.Errorf("failed to create %s: %w", step.name, err)
			}
		}
		v, err := step.get()
		if err != nil {
			return fmt.Errorf("failed to get %s: %w", step.name, err)
		}
		logger.Debug("demo step done", logger.String("step", step.name))
		fmt.Fprintf(w, "%s: %+v\n", step.name, v)
	}
	return nil
}

// derefAll turns a list of records into values so they print as fields.
func derefAll[T any](items []*T, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, *item)
	}
	return out, nil
}
