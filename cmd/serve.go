/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

// ServeCmd represents the serve command
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve exported diagram files over HTTP",
	Long: `
Serves a directory of exported diagram HTML files, with a JSON index of
the available diagrams at /api/diagrams,

bridgediag serve `,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		port, _ := cmd.Flags().GetInt("port")
		Serve(dir, port)
	},
}

func init() {
	rootCmd.AddCommand(ServeCmd)
	ServeCmd.Flags().StringP("dir", "D", ".", "directory holding the exported diagrams")
	ServeCmd.Flags().IntP("port", "p", 8080, "listen port")
}

func Serve(dir string, port int) {
	r := mux.NewRouter()
	r.HandleFunc("/api/diagrams", diagramIndex(dir)).Methods("GET")
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(dir)))

	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Serving %s on http://localhost%s\n", dir, addr)
	server := &http.Server{
		Addr:    addr,
		Handler: r,
	}
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic(err)
	}
}

// diagramIndex lists the exported HTML files under the served directory.
func diagramIndex(dir string) http.HandlerFunc {
	type Doc struct {
		Name string `json:"name"`
		Path string `json:"path"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var docs []Doc
		fs.WalkDir(os.DirFS(dir), ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if strings.EqualFold(filepath.Ext(path), ".html") {
				docs = append(docs, Doc{Name: d.Name(), Path: path})
			}
			return nil
		})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(docs)
	}
}
