// Package templates loads the template sets new projects are generated from.
//
// A template set is a directory with a manifest and a files/ tree:
//
//	terraform/
//	  template.yaml
//	  files/
//	    main.tf.tmpl        rendered, written as main.tf
//	    versions.tf         copied verbatim
//	    _gitignore          written as .gitignore
//
// Files ending in .tmpl go through the placeholder renderer; every other file
// is an example resource and is copied byte-for-byte. Relative paths may
// contain placeholders too.
//
// Built-in sets are embedded in the binary. User sets are read from the data
// directory and from configured search paths; a user set shadows a built-in
// set of the same name.
package templates
