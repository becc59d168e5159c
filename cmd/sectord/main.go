package main

import (
	"net/http"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"

	"github.com/piyonchu/sdreel/pkg/device"
	"github.com/piyonchu/sdreel/pkg/device/disk"
	"github.com/piyonchu/sdreel/pkg/device/remote"
)

var devPath = flag.String("dev", "", "block device or image path")
var listen = flag.String("listen", ":9123", "listen addr")
var sector = flag.Int("sector", 512, "sector size")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			func() (device.Device, *http.Server, error) {
				d, err := disk.Open(*devPath, *sector)
				return d, &http.Server{Addr: *listen}, err
			},
		),
		fx.Invoke(
			remote.Proxy,
		),
	).Run()
}
