package main

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/sirupsen/logrus"

	"raycasino/config"
	"raycasino/engine"
)

// Assets holds the sprite futures. Either may stay pending or fail; both
// render as flat shapes in that case.
type Assets struct {
	Gun   *engine.Asset
	Enemy *engine.Asset
}

func LoadAssets(cfg config.Assets, log *logrus.Entry) *Assets {
	onDone := func(a *engine.Asset) {
		entry := log.WithFields(logrus.Fields{"asset": a.Name(), "state": a.State().String()})
		if a.State() == engine.AssetLoaded {
			entry.WithField("source", a.Source()).Info("asset loaded")
			return
		}
		entry.WithError(a.Err()).Warn("asset unavailable, drawing flat")
	}
	return &Assets{
		Gun:   engine.LoadAsync("gun", decodeImageFile, cfg.Gun, onDone),
		Enemy: engine.LoadAsync("enemy", decodeImageFile, cfg.Enemy, onDone),
	}
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
