package remote

import (
	"context"
	"log"
	"net/http"
	"net/rpc"

	"go.uber.org/fx"

	"github.com/piyonchu/sdreel/pkg/device"
)

// Proxy registers the local device on srv and ties the listener to the
// fx lifecycle.
func Proxy(dev device.Device, srv *http.Server, lifecycle fx.Lifecycle) error {
	svc := &Service{dev: dev}
	if err := rpc.Register(svc); err != nil {
		return err
	}

	rpc.HandleHTTP()

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != http.ErrServerClosed {
					log.Fatal(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := dev.Close(); err != nil {
				return err
			}
			return srv.Shutdown(ctx)
		},
	})

	return nil
}

type Service struct {
	dev device.Device
}

func (s *Service) SectorSize(_ EmptyRequest, size *int) error {
	*size = s.dev.SectorSize()
	return nil
}

func (s *Service) ReadSectors(req ReadRequest, p *[]byte) error {
	data, err := s.dev.ReadSectors(req.Start, req.Count)
	if err != nil {
		return err
	}
	*p = data
	return nil
}

func (s *Service) WriteSectors(req *WriteRequest, _ *EmptyResponse) error {
	return s.dev.WriteSectors(req.Start, req.Data)
}
