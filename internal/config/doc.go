// Package config loads the wcbridge manifest.
//
// The manifest is a YAML file, wcbridge.yaml by default, declaring the
// custom elements to define and the settings of the development host.
//
// # Manifest Structure
//
//	elements:
//	  - tag: x-counter
//	    component: counter
//	    wrapper: theme
//	    attributes: [count, label]
//	    functions: [onLimit]
//	    events: [onChange]
//	scripts:
//	  - handlers.js
//	server:
//	  host: localhost
//	  port: 7070
//	publish:
//	  destination: s3://my-bucket/pages/index.html
//
// Script paths are resolved relative to the manifest. Their top-level
// functions are the targets of function attributes.
//
// # Usage
//
//	m, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Address:", m.Server.Address())
package config
