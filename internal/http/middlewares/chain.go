package middlewares

import "net/http"

// Middleware decora un http.Handler. El tipo es asignable al parámetro
// de middleware de chi, así que las mismas piezas sirven en el router y
// en composición manual.
type Middleware func(http.Handler) http.Handler

// Chain envuelve h con los middlewares dados. El primero de la lista
// queda más afuera: intercepta el request antes que el resto y ve la
// respuesta al final.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
