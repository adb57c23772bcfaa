package stream

import (
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	config     Config
	client     mqtt.Client
	controller *Controller
	started    time.Time
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.started = time.Now()

	frameRate := config.Strip.FrameRate
	if frameRate <= 0 {
		frameRate = 30.0
	}
	s.controller = NewController(config, 0, frameRate, 60*time.Second)

	return s
}

// SendFrame sends a frame as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame() {
	runtimeMs := time.Since(s.started).Milliseconds()
	f := s.controller.CalculateFrame(runtimeMs)
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 2, false, b)
	token.Wait()
}

// Run causes the Streamer to send Frames continuously.
func (s *Streamer) Run() {
	frameRate := s.config.Strip.FrameRate
	if frameRate <= 0 {
		frameRate = 30.0
	}

	go s.controller.Run()

	publishTimer := time.NewTicker(time.Duration(float64(time.Second) / frameRate))
	for {
		<-publishTimer.C
		s.SendFrame()
	}
}
