package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
	pb "liyu1981.xyz/energy-monitor-service/pkg/grpc/energy_service"
)

var maxDevices int = 1000
var httpHostPort string = "127.0.0.1:1080"
var grpcHostPort string = "127.0.0.1:10801"

var grpcClient pb.EnergyServiceClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

func main() {
	deviceIDs := make([]string, maxDevices)
	for i := range maxDevices {
		deviceIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v device IDs\n", maxDevices)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	conn, err := grpc.Dial(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = pb.NewEnergyServiceClient(conn)

	fmt.Printf("gRPC server verified and connected\n")

	var startTime time.Time
	var usedTime time.Duration

	// first reading registers the device
	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxDevices {
		wg.Add(1)
		go func() {
			postReading(deviceIDs[i])
			fmt.Printf("\rregistered device %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rregistered %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxDevices {
		wg.Add(1)
		go func() {
			doAction(deviceIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices*3)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

func postReading(deviceID string) {
	useHttp := flipCoin()

	// mostly nominal, occasionally under or over voltage
	v := rndFloat64(175, 255, 1)
	i := rndFloat64(0.1, 10, 3)
	p := math.Round(v*i*10) / 10
	now := time.Now()

	if useHttp {
		payload := map[string]any{
			"voltage":   v,
			"current":   i,
			"power":     p,
			"timestamp": now.Format(time.RFC3339),
		}
		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/devices/%s/readings", httpHostPort, deviceID), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
	} else {
		resp, err := grpcClient.PostReading(context.Background(), &pb.PostReadingRequest{
			DeviceId: deviceID,
			Reading: &pb.Reading{
				Voltage:   proto.Float64(v),
				Current:   proto.Float64(i),
				Power:     proto.Float64(p),
				Timestamp: timestamppb.New(now),
			},
		})
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		if !resp.Status.Success {
			fmt.Printf("\nresponse success = false: %v\n", resp)
		}
	}
}

func doAction(deviceID string) {
	actions := []func(){
		genPostReadingAction(deviceID),
		genGetAlertsAction(deviceID),
		genResetRelayAction(deviceID),
	}
	actionNames := []string{
		"PostReading",
		"GetAlerts",
		"ResetRelay",
	}
	rndMu.Lock()
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	rndMu.Unlock()
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for device %v", actionNames[index], deviceID)
		rndMu.Lock()
		pause := time.Duration(100+rnd.Int31n(1000)) * time.Millisecond
		rndMu.Unlock()
		time.Sleep(pause)
	}
}

func genPostReadingAction(deviceID string) func() {
	return func() {
		postReading(deviceID)
	}
}

func genGetAlertsAction(deviceID string) func() {
	return func() {
		useHttp := flipCoin()

		if useHttp {
			resp, err := http.Get(fmt.Sprintf("http://%s/devices/%s/alerts", httpHostPort, deviceID))
			if err != nil {
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				fmt.Printf("\nresponse status code != 200: %v\n", resp)
			}
		} else {
			resp, err := grpcClient.GetAlerts(context.Background(), &pb.DeviceRequest{DeviceId: deviceID})
			if err != nil {
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			if !resp.Status.Success {
				fmt.Printf("\nresponse success = false: %v\n", resp)
			}
		}
	}
}

func genResetRelayAction(deviceID string) func() {
	return func() {
		useHttp := flipCoin()

		if useHttp {
			resp, err := http.Post(fmt.Sprintf("http://%s/devices/%s/relay/reset", httpHostPort, deviceID), "application/json", nil)
			if err != nil {
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				fmt.Printf("\nresponse status code != 200: %v\n", resp)
			}
		} else {
			resp, err := grpcClient.ResetRelay(context.Background(), &pb.DeviceRequest{DeviceId: deviceID})
			if err != nil {
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			if !resp.Status.Success {
				fmt.Printf("\nresponse success = false: %v\n", resp)
			}
		}
	}
}
