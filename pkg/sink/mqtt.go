package sink

import (
	"encoding/binary"
	"fmt"
	"math"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/willbeason/zoom-fractal/pkg/controller"
	"github.com/willbeason/zoom-fractal/pkg/pixel"
	"github.com/willbeason/zoom-fractal/pkg/view"
)

// Publisher is the part of mqtt.Client used to send frames.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MQTT publishes every frame as binary RGB data to a topic.
type MQTT struct {
	client Publisher
	topic  string
	qos    byte
}

func NewMQTT(client Publisher, topic string, qos byte) *MQTT {
	return &MQTT{client: client, topic: topic, qos: qos}
}

func (m *MQTT) Emit(id controller.ID, _ view.State, buf *pixel.Buffer) error {
	data, err := MarshalFrame(buf)
	if err != nil {
		return err
	}

	token := m.client.Publish(m.topic, m.qos, false, data)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publishing image %d to %q: %w", id.Image, m.topic, err)
	}

	return nil
}

// MarshalFrame packs a frame as its side length, a little endian uint16,
// followed by one RGB triple per pixel in row order.
func MarshalFrame(buf *pixel.Buffer) ([]byte, error) {
	size := buf.Size()
	if size > math.MaxUint16 {
		return nil, fmt.Errorf("frame of %d pixels per side does not fit the header", size)
	}

	data := make([]byte, 2, 2+3*size*size)
	binary.LittleEndian.PutUint16(data, uint16(size))
	for _, p := range buf.Pixels() {
		r, g, b := p.Colorful().Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}

var _ controller.Sink = &MQTT{}
