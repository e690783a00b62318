// Package delivery models the hand-over of a service order by its worker.
package delivery
