// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Web status server for a firmware directory.
// Lists the available firmware resources and serves decoded instruction
// listings. Long-polling clients are notified when the directory changes.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/gobtfw"
	"github.com/google/gobtfw/util"

	"github.com/fsnotify/fsnotify"
	"github.com/golang/glog"
	"github.com/labstack/echo"
)

var (
	portFlag = flag.Int("port", 8080, "Server HTTP port number")
	dirFlag  = flag.String("dir", "firmwares", "Firmware resource directory to display")
)

func firmwareExt(name string) bool {
	return strings.HasSuffix(name, "."+gobtfw.CompressedExt) ||
		strings.HasSuffix(name, "."+gobtfw.UncompressedExt)
}

// A go-routine that waits for firmware directory changes.
// Notifies changes by publishing the resource name via broker.
func watchDirectoryChanges(dir string, broker *util.Broker) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		glog.Errorf("NewWatcher failed: %v", err)
		return
	}
	defer watcher.Close()

	if err = watcher.Add(dir); err != nil {
		glog.Errorf("watcher.Add failed: %v", err)
		return
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				glog.Warning("watcher.Events is not ok. Aborting")
				return
			}
			glog.V(1).Infof("Watcher event: %v", event)
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				if firmwareExt(event.Name) {
					broker.Publish(filepath.Base(event.Name))
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				glog.Warning("watcher.Errors is not ok. Aborting")
				return
			}
			glog.Warningf("Watcher error: %v", err)
		}
	}
}

// Blocks the request until the firmware directory changes, the client
// disconnects, or the poll times out.
func waitForChanges(c echo.Context, broker *util.Broker) {
	var wg sync.WaitGroup
	timedOut := time.NewTimer(5 * time.Minute)
	defer timedOut.Stop()

	wg.Add(1)
	go func() {
		defer wg.Done()
		dirChanged := broker.Subscribe()
		defer broker.Unsubscribe(dirChanged)

		select {
		case <-timedOut.C:
			glog.V(1).Infof("Timed out")
		case <-c.Request().Context().Done():
			glog.V(1).Infof("Client disconnected")
		case name := <-dirChanged:
			glog.V(1).Infof("Received notification for %q from broker", name)
		}
	}()

	wg.Wait()
}

type ResourceMetadata struct {
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	Compressed bool   `json:"compressed"`
}

type InstructionMetadata struct {
	Id      int    `json:"id"`
	Address string `json:"address"`
	Dlen    int    `json:"dlen"`
}

func listResources(dir string) ([]ResourceMetadata, error) {
	var resources []ResourceMetadata
	for _, pattern := range []string{"*." + gobtfw.CompressedExt, "*." + gobtfw.UncompressedExt} {
		files, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			info, err := os.Stat(f)
			if err != nil {
				glog.Warningf("Stat %q failed: %v", f, err)
				continue
			}
			resources = append(resources, ResourceMetadata{
				Name:       filepath.Base(f),
				Size:       info.Size(),
				Compressed: strings.HasSuffix(f, "."+gobtfw.CompressedExt),
			})
		}
	}
	return resources, nil
}

// Builds the status server over a firmware directory. broker delivers
// directory change notifications to long-polling /firmwares requests.
func newServer(dir string, broker *util.Broker) *echo.Echo {
	loader := gobtfw.NewLoader(&gobtfw.DirFetcher{Dir: dir}, nil, nil)
	store := gobtfw.NewFirmwareStore(loader)

	e := echo.New()

	// Returns list of firmware resources in the directory.
	e.GET("/firmwares", func(c echo.Context) error {
		if c.QueryParam("wait") != "false" {
			waitForChanges(c, broker)
		}
		resources, err := listResources(dir)
		if err != nil {
			glog.Errorf("Listing resources failed: %v", err)
			return err
		}
		return c.JSON(http.StatusOK, resources)
	})

	// Returns the decoded instruction listing for a firmware key.
	e.GET("/firmwares/:key", func(c echo.Context) error {
		key := c.Param("key")
		instructions, err := store.GetFirmware(0, 0, key)
		if err != nil {
			glog.Errorf("Error loading firmware %q: %v", key, err)
			return c.String(http.StatusNotFound, "No firmware available")
		}
		var metadata []InstructionMetadata
		for i := range instructions {
			metadata = append(metadata, InstructionMetadata{i,
				fmt.Sprintf("%#08x", instructions[i].Address),
				len(instructions[i].Payload)})
		}
		return c.JSON(http.StatusOK, metadata)
	})

	return e
}

func main() {
	flag.Parse()
	defer glog.Flush()

	watchBroker := util.NewBroker()
	go watchBroker.Start()
	go watchDirectoryChanges(*dirFlag, watchBroker)

	e := newServer(*dirFlag, watchBroker)
	glog.Fatal(e.Start(fmt.Sprintf(":%d", *portFlag)))
}
