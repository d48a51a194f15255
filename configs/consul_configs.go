package configs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
)

type ConsulService struct {
	ID      string            `json:"ID"`
	Name    string            `json:"Name"`
	Address string            `json:"Address"`
	Port    int               `json:"Port"`
	Check   map[string]string `json:"Check"`
}

// RegisterService registers the service with Consul. Registration is skipped
// when CONSUL_ADDRESS is unset so local runs don't need an agent.
func RegisterService(serviceID, serviceName, address string, port int, healthCheckURL string) error {
	consulAddress := os.Getenv("CONSUL_ADDRESS")
	if consulAddress == "" {
		log.Println("CONSUL_ADDRESS not set, skipping Consul registration")
		return nil
	}

	service := ConsulService{
		ID:      serviceID,
		Name:    serviceName,
		Address: address,
		Port:    port,
		Check: map[string]string{
			"HTTP":     healthCheckURL,
			"Interval": "10s",
		},
	}

	data, err := json.Marshal(service)
	if err != nil {
		return fmt.Errorf("failed to marshal service data: %v", err)
	}

	url := fmt.Sprintf("%s/v1/agent/service/register", consulAddress)
	req, err := http.NewRequest("PUT", url, bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("failed to create PUT request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to register service with Consul: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to register service with Consul: %s", resp.Status)
	}

	log.Printf("Service '%s' registered successfully with Consul", serviceName)
	return nil
}
