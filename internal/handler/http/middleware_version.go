// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

const appVersionHeader = "X-App-Version"

// withAppVersion stamps every response with the running application version.
func (h *Handler) withAppVersion(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(appVersionHeader, h.services.AppInfoService.GetAppVersion(r.Context()))
		next.ServeHTTP(w, r)
	})
}
