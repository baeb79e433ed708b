// Package api is a service providing an HTTP REST API to the latest sensor
// readings.
//
// The endpoints supported are:
//
// http://localhost:8723/sensors - latest event from every sensor
//
// http://localhost:8723/sensors/{source} - latest event from one sensor, e.g. /sensors/52.9603
//
// http://localhost:8723/decode - POST a hex frame, returns the decoded report
//
// http://localhost:8723/command - POST a hex frame to transmit
//
// http://localhost:8723/events/feed - continuous live stream of events (line delimited)
//
// http://localhost:8723/metrics - prometheus metrics
package api

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/barnybug/rfxcmd/output"
	"github.com/barnybug/rfxcmd/pubsub"
	"github.com/barnybug/rfxcmd/rfx"
	"github.com/barnybug/rfxcmd/services"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	sensorValue = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "rfxcmd",
		Name:      "sensor_value",
		Help:      "Latest numeric reading from each sensor.",
	}, []string{"packettype", "id", "name"})

	framesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rfxcmd",
		Name:      "frames_total",
		Help:      "Decoded frames received.",
	}, []string{"packettype"})
)

// Service api
type Service struct {
	sensors map[string]*pubsub.Event
	lock    sync.Mutex
}

// ID of the service
func (service *Service) ID() string {
	return "api"
}

func errorResponse(w http.ResponseWriter, err error, code int) {
	http.Error(w, err.Error(), code)
}

func apiIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "text/html")
	fmt.Fprintf(w, "<html>rfxcmd is listening</html>")
}

func jsonResponse(w http.ResponseWriter, obj interface{}) {
	w.Header().Add("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	err := enc.Encode(obj)
	if err != nil {
		errorResponse(w, err, 500)
	}
}

func (service *Service) apiSensors(w http.ResponseWriter, r *http.Request) {
	ret := make(map[string]interface{})
	service.lock.Lock()
	for source, ev := range service.sensors {
		ret[source] = ev.Map()
	}
	service.lock.Unlock()
	jsonResponse(w, ret)
}

func (service *Service) apiSensor(w http.ResponseWriter, r *http.Request) {
	source := mux.Vars(r)["source"]
	service.lock.Lock()
	ev, ok := service.sensors[source]
	service.lock.Unlock()
	if !ok {
		http.Error(w, "not found: "+source, 404)
		return
	}
	jsonResponse(w, ev.Map())
}

func readFrame(r *http.Request) (string, error) {
	data, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func apiDecode(w http.ResponseWriter, r *http.Request) {
	frame, err := readFrame(r)
	if err != nil {
		errorResponse(w, err, 500)
		return
	}
	report, err := rfx.DecodeHex(frame, services.Config.DecoderConfig())
	if err != nil {
		errorResponse(w, err, 400)
		return
	}
	jsonResponse(w, output.Document(report))
}

func apiCommand(w http.ResponseWriter, r *http.Request) {
	frame, err := readFrame(r)
	if err != nil {
		errorResponse(w, err, 500)
		return
	}
	if _, err := rfx.DecodeHex(frame, rfx.Config{}); err != nil {
		errorResponse(w, err, 400)
		return
	}
	services.SendCommand(frame)
	jsonResponse(w, true)
}

func apiEventsFeed(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "application/json; boundary=NL")

	ch := services.Subscriber.Subscribe(pubsub.All())
	defer services.Subscriber.Close(ch)

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			encoder := json.NewEncoder(w)
			if err := encoder.Encode(ev.Map()); err != nil {
				return
			}
			w.Write([]byte("\r\n")) // separator
			if f, ok := w.(http.Flusher); ok {
				f.Flush()
			}
		}
	}
}

func (service *Service) router() *mux.Router {
	router := mux.NewRouter()
	router.Path("/").HandlerFunc(apiIndex)
	router.Path("/sensors").Methods("GET").HandlerFunc(service.apiSensors)
	router.Path("/sensors/{source}").Methods("GET").HandlerFunc(service.apiSensor)
	router.Path("/decode").Methods("POST").HandlerFunc(apiDecode)
	router.Path("/command").Methods("POST").HandlerFunc(apiCommand)
	router.Path("/events/feed").HandlerFunc(apiEventsFeed)
	router.Path("/metrics").Handler(promhttp.Handler())
	return router
}

type loggingHandler struct {
	Handler http.Handler
}

func (service loggingHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	log.Printf("%s %s\n", req.Method, req.RequestURI)
	service.Handler.ServeHTTP(w, req)
}

// record keeps the latest event per sensor and updates the metrics.
func (service *Service) record(ev *pubsub.Event) {
	r := ev.Report
	if r == nil {
		return
	}
	typ := fmt.Sprintf("%02X", r.Header.PacketType)
	framesTotal.WithLabelValues(typ).Inc()

	service.lock.Lock()
	service.sensors[r.Source()] = ev
	service.lock.Unlock()

	for _, e := range r.Extras.Keys() {
		switch e {
		case rfx.ExtraPacketType, rfx.ExtraSubtype, rfx.ExtraSeqnbr, rfx.ExtraID:
			continue
		}
		if value, ok := r.Extras.Float(e); ok {
			sensorValue.WithLabelValues(typ, r.ID(), e.String()).Set(value)
		}
	}
}

func (service *Service) recordEvents() {
	for ev := range services.Subscriber.Subscribe(pubsub.Reports()) {
		service.record(ev)
	}
}

func (service *Service) Init() error {
	service.sensors = map[string]*pubsub.Event{}
	return nil
}

// Run the service
func (service *Service) Run() error {
	go service.recordEvents()
	addr := services.Config.Api.Addr
	if addr == "" {
		addr = ":8723"
	}
	log.Println("Listening on " + addr)
	return http.ListenAndServe(addr, loggingHandler{Handler: service.router()})
}
