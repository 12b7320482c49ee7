package catalog

// Seed returns the deterministic development catalog. It mirrors the
// embedded products.json document so local runs and tests see the same
// shelf regardless of which source populated the store.
func Seed() Catalog {
	return Catalog{
		{Name: "Wireless Headphones", Price: 59.99, Image: "img/headphones.svg", Stock: MaxStock},
		{Name: "Mechanical Keyboard", Price: 89.99, Image: "img/keyboard.svg", Stock: MaxStock},
		{Name: "Bluetooth Speaker", Price: 45.25, Image: "img/speaker.svg", Stock: MaxStock},
		{Name: "USB-C Hub", Price: 34.50, Image: "img/usb-hub.svg", Stock: MaxStock},
		{Name: "HD Webcam", Price: 27.99, Image: "img/webcam.svg", Stock: MaxStock},
		{Name: "Smart Watch", Price: 129.00, Image: "img/watch.svg", Stock: MaxStock},
	}
}
