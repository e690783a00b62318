// Package listing models what workers sell: services delivered by hand and
// digital products downloaded after payment.
package listing
