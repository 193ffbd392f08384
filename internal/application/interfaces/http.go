package interfaces

import "net/http"

type HTTPHandler interface {
	http.Handler
}
