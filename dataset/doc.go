// Package dataset loads weighted interval scheduling problems from files.
//
// Supported formats:
//
//	YAML (.yaml, .yml) and JSON (.json), decoded with gopkg.in/yaml.v3.
//	Either a bare list of jobs (one problem named after the file):
//
//	  - {id: a, start: 0, end: 6, weight: 3}
//	  - {id: b, start: 1, end: 4, weight: 5}
//
//	or a document holding several named problems:
//
//	  problems:
//	    - name: room-1
//	      intervals:
//	        - {id: a, start: 0, end: 6, weight: 3}
//
//	CSV (.csv): rows of "start,end,weight" or "id,start,end,weight",
//	an optional header row, and '#' comment lines. One problem per file.
//
// Bounds and weights are int64. start, end and weight are required and
// end must not precede start. Jobs without an id are named "#<position>".
package dataset
