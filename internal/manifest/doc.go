// Package manifest fetches and models the build manifest produced by the
// bundler alongside the application bundle.
//
// The manifest is a JSON object mapping source module keys to their
// published output files:
//
//	{
//	  "src/main.tsx": {
//	    "file": "main.abc123.js",
//	    "isEntry": true,
//	    "css": ["main.abc123.css"],
//	    "assets": ["logo.def456.png"]
//	  }
//	}
//
// It is retrieved exactly once per embed from {baseURL}{manifestPath} and
// treated as immutable afterwards. Entry-point and stylesheet selection over
// the manifest lives in the resolve package.
package manifest
